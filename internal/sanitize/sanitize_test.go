// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   \n\t  ",
			want: "",
		},
		{
			name: "metadata line dropped, prose preserved",
			in:   "source: foo\nThe prose stays here.",
			want: "The prose stays here.",
		},
		{
			name: "several metadata keys",
			in:   "Title: Planning Basics\nchapter: 3\nword-count: 250\nReal content survives.",
			want: "Real content survives.",
		},
		{
			name: "boilerplate removed case-insensitively",
			in:   "This guide is useful. All Rights Reserved.",
			want: "This guide is useful.",
		},
		{
			name: "cross reference removed",
			in:   "For context see 12. The idea holds regardless.",
			want: "For context. The idea holds regardless.",
		},
		{
			name: "duplicate sentences collapse to first occurrence",
			in:   "Agile helps teams. agile helps teams. Another point.",
			want: "Agile helps teams. Another point.",
		},
		{
			name: "whitespace runs collapse",
			in:   "Too   many \t spaces\n\nhere.",
			want: "Too many spaces here.",
		},
		{
			name: "no terminal punctuation is one sentence",
			in:   "a fragment without an ending",
			want: "a fragment without an ending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanRepairsBrokenTokens(t *testing.T) {
	tests := []struct {
		in       string
		contains string
	}{
		{"am indset", "a mindset"},
		{"inagile", "in agile"},
		{"adopting am indset of learning", "a mindset"},
		{"teams working inagile settings", "in agile"},
		{"the b ook is open", "the book is open"},
	}
	for _, tt := range tests {
		got := Clean(tt.in)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("Clean(%q) = %q, want substring %q", tt.in, got, tt.contains)
		}
	}
}

func TestCleanPreservesOneLetterWords(t *testing.T) {
	got := Clean("choose a path and i agree")
	if !strings.Contains(got, "a path") {
		t.Errorf("Clean merged a legitimate %q: %q", "a", got)
	}
	if !strings.Contains(got, "i agree") {
		t.Errorf("Clean merged a legitimate %q: %q", "i", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"source: foo\nThe prose stays here.",
		"Agile helps teams. agile helps teams. Another point!",
		"the b ook   is\nopen. See 3 for details.",
		"Evidence: pending\nA real sentence with substance. \"Not provided\"",
		"Planning matters? Planning matters. It really does.",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanNoDuplicateSentences(t *testing.T) {
	got := Clean("One idea here. Another idea there. one idea here. A third idea now.")
	parts := strings.Split(got, ". ")
	seen := make(map[string]bool)
	for _, p := range parts {
		key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(p), "."))
		if key == "" {
			continue
		}
		if seen[key] {
			t.Fatalf("duplicate sentence %q in %q", p, got)
		}
		seen[key] = true
	}
}

func TestCleanWhitespaceInvariants(t *testing.T) {
	inputs := []string{
		"  leading and trailing   ",
		"a\tb\nc   d.",
		"source: x\n\n\nProse   here.",
	}
	for _, in := range inputs {
		got := Clean(in)
		if strings.Contains(got, "  ") {
			t.Errorf("Clean(%q) contains a double space: %q", in, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("Clean(%q) has leading/trailing whitespace: %q", in, got)
		}
	}
}

func TestCleanDropsPlaceholders(t *testing.T) {
	in := "Evidence: pending review\nA real sentence with substance."
	got := Clean(in)
	if strings.Contains(strings.ToLower(got), "evidence") {
		t.Errorf("placeholder line survived: %q", got)
	}
	if !strings.Contains(got, "A real sentence with substance") {
		t.Errorf("prose lost: %q", got)
	}

	got = Clean(`The witness said "Not provided" during the review.`)
	if strings.Contains(got, "Not provided") {
		t.Errorf("placeholder quote survived: %q", got)
	}
}
