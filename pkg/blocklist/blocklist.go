package blocklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Blocklist holds the set of blocked single words, compared case-insensitively.
// Multi-word phrases are rejected on Add so that a phrase like "ball gag"
// never blocks "ball" or "gag" on their own.
type Blocklist struct {
	words map[string]struct{}
	mu    sync.RWMutex
}

func New() *Blocklist {
	return &Blocklist{
		words: make(map[string]struct{}),
	}
}

// Add normalizes word and inserts it into the set. Empty entries and entries
// containing a space are skipped.
func (b *Blocklist) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || strings.Contains(word, " ") {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.words[word] = struct{}{}
}

// Contains reports whether the lowercase form of word is blocked.
func (b *Blocklist) Contains(word string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.words[strings.ToLower(word)]
	return exists
}

func (b *Blocklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.words)
}

// LoadReader adds one candidate term per line from r.
func (b *Blocklist) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		b.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading blocklist: %w", err)
	}
	return nil
}

// LoadFile reads the blocklist file at path into the set.
func (b *Blocklist) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening blocklist file: %w", err)
	}
	defer f.Close()

	return b.LoadReader(f)
}
