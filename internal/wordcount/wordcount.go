// Package wordcount provides the mechanical word counting and threshold
// parsing used by the Markdown read hook.
//
// Counting is deliberately dumb: tokens are runs of non-whitespace, with
// no locale awareness and no understanding of Markdown syntax. Code fences
// and list markers count as ordinary tokens.
package wordcount

import (
	"strconv"
	"strings"
)

// DefaultMinWords is the word threshold used when no valid override is set.
const DefaultMinWords = 200

// Count returns the number of whitespace-separated tokens in content.
// Empty or whitespace-only input counts as zero words.
func Count(content string) int {
	return len(strings.Fields(content))
}

// ParseLeadingInt parses a base-10 integer from the start of s, ignoring
// any trailing garbage ("200abc" parses to 200). Leading and trailing
// whitespace is trimmed and a single sign is accepted. Returns false when
// s contains no digits or the value does not fit in an int.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Threshold resolves a word threshold from a raw environment value.
// Unset, empty, non-numeric, or sub-1 values fall back to DefaultMinWords;
// anything else is returned as parsed, uncapped.
func Threshold(raw string) int {
	n, ok := ParseLeadingInt(raw)
	if !ok || n < 1 {
		return DefaultMinWords
	}
	return n
}
