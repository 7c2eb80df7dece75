// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package concepts

import (
	"strings"
	"testing"
)

func hasTerm(list []string, term string) bool {
	for _, k := range list {
		if strings.EqualFold(k, term) {
			return true
		}
	}
	return false
}

func TestExtractCapitalizedPhrases(t *testing.T) {
	text := "Managers cite the Three Horizons Model often. Indeed the Three Horizons Model recurs."
	got := Extract(text)
	if !hasTerm(got, "Three Horizons Model") {
		t.Errorf("Extract missed capitalized phrase: %v", got)
	}
}

func TestExtractRepeatedBigrams(t *testing.T) {
	text := "sprint goals guide planning. sprint goals anchor every review meeting. review meeting notes matter."
	got := Extract(text)
	if !hasTerm(got, "sprint goals") {
		t.Errorf("Extract missed repeated bigram: %v", got)
	}
	// A bigram seen once does not qualify.
	if hasTerm(got, "guide planning") {
		t.Errorf("Extract kept a single-occurrence bigram: %v", got)
	}
}

func TestExtractExcludesStopwordBigrams(t *testing.T) {
	text := "over the hill and over the hill and far away"
	for _, term := range Extract(text) {
		for _, w := range strings.Fields(strings.ToLower(term)) {
			if w == "the" || w == "and" {
				t.Errorf("Extract kept stopword bigram %q", term)
			}
		}
	}
}

func TestKeywordsCuratedVocabulary(t *testing.T) {
	text := "Agile roadmap work ties business value to the three horizons, with every stakeholder and customer sharing one backlog and one mindset."
	got := Keywords(text)

	if len(got) < 5 || len(got) > 7 {
		t.Fatalf("keyword count %d outside [5,7]: %v", len(got), got)
	}
	if !hasTerm(got, "business value") {
		t.Errorf("Keywords missed curated term %q: %v", "business value", got)
	}
	if !hasTerm(got, "three horizons") {
		t.Errorf("Keywords missed curated term %q: %v", "three horizons", got)
	}
}

func TestKeywordsUnique(t *testing.T) {
	text := "Agile agile AGILE roadmap roadmap backlog mindset customer stakeholder business value vision."
	got := Keywords(text)
	seen := make(map[string]bool)
	for _, k := range got {
		key := strings.ToLower(k)
		if seen[key] {
			t.Fatalf("duplicate keyword %q in %v", k, got)
		}
		seen[key] = true
	}
}

func TestKeywordsFallbackNgrams(t *testing.T) {
	// No curated term appears; repeated bigrams must fill the list.
	text := "Data pipeline design shapes stream processing. Data pipeline design rewards careful thought. Stream processing systems reward careful thought."
	got := Keywords(text)

	if len(got) > 7 {
		t.Fatalf("keyword count %d above 7: %v", len(got), got)
	}
	if !hasTerm(got, "data pipeline") {
		t.Errorf("fallback missed frequent bigram: %v", got)
	}
	for _, k := range got {
		if strings.ContainsAny(k, "0123456789") {
			t.Errorf("fallback keyword contains digits: %q", k)
		}
	}
}
