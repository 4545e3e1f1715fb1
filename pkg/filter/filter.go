package filter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/NivBraz/wordfilter-service/internal/models"
	"github.com/NivBraz/wordfilter-service/pkg/blocklist"
)

// ProgressFunc is invoked once per processed input line.
type ProgressFunc func()

// Run streams the wordlist at inputPath into outputPath, dropping every word
// whose lowercase form is in blocked. Kept words are written verbatim, one per
// line, in input order. The output file is truncated on open and created even
// when the input is empty. If Run fails partway the output is left as a
// truncated prefix of kept words.
func Run(ctx context.Context, inputPath, outputPath string, blocked *blocklist.Blocklist, progress ProgressFunc) (*models.Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error opening wordlist: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %w", err)
	}
	defer out.Close()

	result := &models.Result{
		BlocklistSize: blocked.Len(),
		RemovedWords:  []string{},
	}

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		word := strings.TrimSpace(scanner.Text())
		if blocked.Contains(word) {
			result.Removed++
			result.RemovedWords = append(result.RemovedWords, word)
		} else {
			if _, err := w.WriteString(word + "\n"); err != nil {
				return nil, fmt.Errorf("error writing output file: %w", err)
			}
			result.Kept++
		}

		if progress != nil {
			progress()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist: %w", err)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("error flushing output file: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("error closing output file: %w", err)
	}

	return result, nil
}
