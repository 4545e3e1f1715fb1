package blocklist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		wantLen int
	}{
		{"single words", []string{"cat", "dog"}, 2},
		{"duplicates collapse", []string{"cat", "Cat", "CAT"}, 1},
		{"multi-word phrases skipped", []string{"ball gag", "cat"}, 1},
		{"empty entries skipped", []string{"", "   ", "\t"}, 0},
		{"whitespace trimmed", []string{"  cat  "}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, e := range tt.entries {
				b.Add(e)
			}
			if got := b.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestContains(t *testing.T) {
	b := New()
	b.Add("Apple")
	b.Add("ball gag")

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"lowercase match", "apple", true},
		{"uppercase match", "APPLE", true},
		{"mixed case match", "Apple", true},
		{"phrase constituent not blocked", "ball", false},
		{"other phrase constituent not blocked", "gag", false},
		{"phrase itself not blocked", "ball gag", false},
		{"unrelated word", "dog", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestLoadReader(t *testing.T) {
	content := "cat\nBall Gag\n\nDOG\n  bird  \n"

	b := New()
	if err := b.LoadReader(strings.NewReader(content)); err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	if got := b.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	for _, word := range []string{"cat", "dog", "bird"} {
		if !b.Contains(word) {
			t.Errorf("Contains(%q) = false, want true", word)
		}
	}
	if b.Contains("ball") || b.Contains("gag") {
		t.Error("phrase constituents must not be blocked")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist.txt")
	if err := os.WriteFile(path, []byte("cat\ndog\n"), 0644); err != nil {
		t.Fatalf("Failed to create test blocklist: %v", err)
	}

	b := New()
	if err := b.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := b.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	b := New()
	err := b.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("LoadFile() expected error for missing file")
	}
}
