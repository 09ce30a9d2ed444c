package wordcount

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty string", "", 0},
		{"whitespace only", "   \t\n  ", 0},
		{"single word", "hello", 1},
		{"two words", "hello world", 2},
		{"run of spaces", "a  b", 2},
		{"tabs and newlines", "a\tb\nc\r\nd", 4},
		{"leading and trailing whitespace", "  a b  ", 2},
		{"markdown counts mechanically", "# Heading\n- item one\n```\ncode\n```", 8},
		{"punctuation attached to words", "one, two. three!", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.content); got != tt.expected {
				t.Errorf("Count(%q) = %d, want %d", tt.content, got, tt.expected)
			}
		})
	}
}

func TestCountTrimInvariant(t *testing.T) {
	// Leading/trailing whitespace never affects the count.
	inputs := []string{"", "a", "a b", "word  word\tword", "\n\nx\n\n"}
	for _, s := range inputs {
		if Count(s) != Count(strings.TrimSpace(s)) {
			t.Errorf("Count(%q) != Count(trimmed)", s)
		}
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{"empty", "", 0, false},
		{"plain number", "200", 200, true},
		{"leading zeros", "00500", 500, true},
		{"trailing garbage", "200abc", 200, true},
		{"negative", "-5", -5, true},
		{"explicit positive", "+7", 7, true},
		{"zero", "0", 0, true},
		{"no digits", "abc", 0, false},
		{"sign only", "-", 0, false},
		{"surrounding whitespace", "  42  ", 42, true},
		{"decimal truncates", "3.9", 3, true},
		{"overflow", "99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseLeadingInt(%q) = (%d, %v), want (%d, %v)",
					tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"unset", "", DefaultMinWords},
		{"invalid", "invalid", DefaultMinWords},
		{"zero defaults", "0", DefaultMinWords},
		{"negative defaults", "-100", DefaultMinWords},
		{"valid", "500", 500},
		{"leading zeros", "00500", 500},
		{"leading-integer parse", "200abc", 200},
		{"one is accepted", "1", 1},
		{"large values uncapped", "100000000", 100000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Threshold(tt.input); got != tt.expected {
				t.Errorf("Threshold(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
