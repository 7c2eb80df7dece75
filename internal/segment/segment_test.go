// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		minLen int
		want   []string
	}{
		{
			name:   "splits on terminal runs",
			text:   "First sentence here. Second one follows! Third asks a question?",
			minLen: 1,
			want:   []string{"First sentence here", "Second one follows", "Third asks a question"},
		},
		{
			name:   "length filter drops short pieces",
			text:   "Tiny. This one is comfortably long enough to keep.",
			minLen: 15,
			want:   []string{"This one is comfortably long enough to keep"},
		},
		{
			name:   "no terminal punctuation is one sentence",
			text:   "a single unterminated fragment",
			minLen: 1,
			want:   []string{"a single unterminated fragment"},
		},
		{
			name:   "empty input",
			text:   "",
			minLen: 1,
			want:   nil,
		},
		{
			name:   "collapsed terminator runs",
			text:   "Really?! Yes... definitely.",
			minLen: 1,
			want:   []string{"Really", "Yes", "definitely"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text, tt.minLen)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q, %d) = %v, want %v", tt.text, tt.minLen, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	got := Words(`The "Quick" brown-fox, jumps!`)
	want := []string{"the", "quick", "brown-fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestCountWords(t *testing.T) {
	if got := CountWords("one two  three\nfour"); got != 4 {
		t.Errorf("CountWords = %d, want 4", got)
	}
	if got := CountWords("   "); got != 0 {
		t.Errorf("CountWords = %d, want 0", got)
	}
}

func TestEnsureTerminal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"already done.", "already done."},
		{"an exclamation!", "an exclamation!"},
		{"a question?", "a question?"},
		{"needs a period", "needs a period."},
		{"trailing space ", "trailing space."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EnsureTerminal(tt.in); got != tt.want {
			t.Errorf("EnsureTerminal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
