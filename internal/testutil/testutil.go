// Package testutil provides shared test utilities for mdselmcp tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdseltools/mdselmcp/internal/config"
)

// HookConfig returns a config with the stock hook policy for tests:
// 200-word threshold, .md only, Bash scanning on.
func HookConfig() *config.Config {
	return &config.Config{
		Binary:     "mdsel",
		MinWords:   200,
		Extensions: []string{"md"},
		ScanBash:   true,
	}
}

// WriteWords writes a file containing n whitespace-separated tokens into
// dir and returns its path.
func WriteWords(t testing.TB, dir, name string, n int) string {
	t.Helper()

	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(words, " ")), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
