// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits sanitized text into candidate sentences.
package segment

import (
	"regexp"
	"strings"
)

var terminalRun = regexp.MustCompile(`[.!?]+`)

// Sentences splits text on runs of sentence-terminal punctuation, trims
// each piece, and drops pieces shorter than minLen characters. Text with
// no terminal punctuation is treated as a single sentence. The result is
// a fresh slice; callers that need a second pass re-invoke.
func Sentences(text string, minLen int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, part := range terminalRun.Split(text, -1) {
		s := strings.TrimSpace(part)
		if len(s) >= minLen && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words tokenizes text into lowercase word tokens, stripping any
// non-letter, non-digit characters.
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !isAlnum(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// CountWords reports the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EnsureTerminal appends a period when s does not already end with
// sentence-terminal punctuation.
func EnsureTerminal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z'
}
