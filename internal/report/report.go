package report

import (
	"fmt"
	"io"

	"github.com/NivBraz/wordfilter-service/internal/models"
	"github.com/fatih/color"
)

// Options controls what Print emits.
type Options struct {
	ListRemoved bool
	Color       bool
}

// Print writes the removed-words listing and the run summary to w.
func Print(w io.Writer, res *models.Result, outputPath string, opts Options) {
	heading := color.New(color.FgHiCyan, color.Bold)
	if !opts.Color {
		heading.DisableColor()
	}

	if opts.ListRemoved {
		heading.Fprintln(w, "\n--- Removed Words ---")
		for _, word := range res.RemovedWords {
			fmt.Fprintf(w, "  %s\n", word)
		}
	}

	heading.Fprintln(w, "\n--- Summary ---")
	fmt.Fprintf(w, "Words kept: %d\n", res.Kept)
	fmt.Fprintf(w, "Words removed: %d\n", res.Removed)
	fmt.Fprintf(w, "Output written to: %s\n", outputPath)
}
