// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package concepts derives salient terms from sanitized text. Extract
// produces scoring signals (capitalized phrases and repeated bigrams);
// Keywords produces the note's keyword list from a curated domain
// vocabulary with a frequency-derived n-gram fallback.
package concepts

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/notegen/internal/segment"
)

// domainVocabulary is the curated term list checked before any
// frequency-derived fallback. Matching is case-insensitive substring.
var domainVocabulary = []string{
	"business value",
	"three horizons",
	"agile",
	"product owner",
	"roadmap",
	"stakeholder",
	"sprint planning",
	"backlog",
	"mindset",
	"continuous improvement",
	"discovery",
	"delivery",
	"prioritization",
	"value stream",
	"iteration",
	"feedback loop",
	"strategy",
	"vision",
	"customer",
	"outcome",
}

// stopwords are excluded from frequency-derived bigrams and trigrams.
var stopwords = map[string]bool{
	"the": true,
	"and": true,
}

// capitalizedPhrase matches proper-noun-like sequences of two or more
// capitalized words.
var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)

const (
	minKeywords   = 5
	maxKeywords   = 7
	maxBigrams    = 10
	minCuratedHit = 5
)

// Extract returns concept terms used as scoring signals: capitalized
// multi-word phrases longer than 3 characters, unioned with bigrams that
// appear at least twice in the lowercased token stream (stopword bigrams
// excluded, capped to the top 10 by frequency).
func Extract(text string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(term string) {
		key := strings.ToLower(term)
		if !seen[key] {
			seen[key] = true
			out = append(out, term)
		}
	}

	for _, m := range capitalizedPhrase.FindAllString(text, -1) {
		if len(m) > 3 {
			add(m)
		}
	}
	for _, bg := range frequentNgrams(segment.Words(text), 2, 2, maxBigrams) {
		add(bg)
	}
	return out
}

// Keywords returns the note's keyword list. Curated domain terms found in
// the text win; only when fewer than five curated terms match does the
// frequency-derived bigram/trigram fallback contribute. The result is
// deduplicated case-insensitively and clamped to 5-7 entries.
func Keywords(text string) []string {
	lower := strings.ToLower(text)

	var out []string
	seen := make(map[string]bool)
	add := func(term string) {
		key := strings.ToLower(term)
		if !seen[key] && key != "" {
			seen[key] = true
			out = append(out, term)
		}
	}

	for _, term := range domainVocabulary {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	if len(out) < minCuratedHit {
		words := segment.Words(text)
		for _, g := range frequentNgrams(words, 2, 3, maxKeywords) {
			add(g)
		}
		// Last resort: frequent long unigrams keep the list at five.
		if len(out) < minKeywords {
			for _, w := range frequentWords(words) {
				if len(out) >= minKeywords {
					break
				}
				add(w)
			}
		}
	}

	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}

// frequentNgrams counts n-grams of sizes [minN, maxN] over the token
// stream, excluding spans containing stopwords or digits, and returns up
// to limit grams that occur at least twice, most frequent first. Ties
// break lexicographically for determinism.
func frequentNgrams(words []string, minN, maxN, limit int) []string {
	counts := make(map[string]int)
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(words); i++ {
			span := words[i : i+n]
			if spanExcluded(span) {
				continue
			}
			counts[strings.Join(span, " ")]++
		}
	}

	var grams []string
	for g, c := range counts {
		if c >= 2 {
			grams = append(grams, g)
		}
	}
	sort.Slice(grams, func(i, j int) bool {
		if counts[grams[i]] != counts[grams[j]] {
			return counts[grams[i]] > counts[grams[j]]
		}
		return grams[i] < grams[j]
	})
	if len(grams) > limit {
		grams = grams[:limit]
	}
	return grams
}

func spanExcluded(span []string) bool {
	for _, w := range span {
		if stopwords[w] || strings.ContainsAny(w, "0123456789") {
			return true
		}
	}
	return false
}

// frequentWords returns words longer than five characters ordered by
// descending frequency, ties broken lexicographically.
func frequentWords(words []string) []string {
	counts := make(map[string]int)
	for _, w := range words {
		if len(w) > 5 && !stopwords[w] {
			counts[w]++
		}
	}
	out := make([]string, 0, len(counts))
	for w := range counts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
