// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score assigns relevance scores to candidate sentences and
// suppresses near-duplicates. Weights are design constants applied by a
// single additive rule loop; they are not tunable at runtime.
package score

import (
	"strings"

	"github.com/pdiddy/notegen/pkg/types"
)

// expositionVerbs signal a sentence that explains or defines something.
var expositionVerbs = []string{
	"is",
	"introduces",
	"describes",
	"defines",
	"explains",
	"emphasizes",
	"recommends",
	"provides",
	"demonstrates",
	"enables",
	"results in",
}

// subjectStarters open a subject + exposition-verb pattern.
var subjectStarters = map[string]bool{
	"this": true,
	"it":   true,
	"the":  true,
}

// interrogatives identify question sentences by their leading word.
var interrogatives = map[string]bool{
	"what": true, "why": true, "how": true, "when": true, "where": true,
	"who": true, "which": true, "do": true, "does": true, "did": true,
	"is": true, "are": true, "can": true, "could": true, "should": true,
	"would": true, "will": true,
}

// Takeaway candidacy bounds.
const (
	minTakeawayChars = 20
	maxTakeawayChars = 200
	minCrispWords    = 8
	maxCrispWords    = 28
)

// signal is one additive scoring rule: a matcher paired with its weight
// and tag. Rules are applied independently and summed.
type signal struct {
	tag    string
	weight int
	count  func(lower string, words []string, in Input) int
}

// Input carries the caller-supplied term lists that feed the scorer.
type Input struct {
	// Keywords are the note's keyword phrases.
	Keywords []string

	// ConceptTerms are the extracted concept signals.
	ConceptTerms []string

	// DomainTerms are user-supplied vocabulary terms, already split.
	DomainTerms []string
}

var signals = []signal{
	{tag: "starter", weight: 3, count: func(lower string, words []string, _ Input) int {
		if len(words) < 2 || !subjectStarters[words[0]] {
			return 0
		}
		rest := strings.TrimPrefix(lower, words[0])
		rest = strings.TrimSpace(rest)
		for _, v := range expositionVerbs {
			if strings.HasPrefix(rest, v+" ") || rest == v {
				return 1
			}
		}
		return 0
	}},
	{tag: "verb", weight: 2, count: func(lower string, _ []string, _ Input) int {
		for _, v := range expositionVerbs {
			if strings.Contains(lower, v) {
				return 1
			}
		}
		return 0
	}},
	{tag: "keyword", weight: 1, count: func(lower string, _ []string, in Input) int {
		return containedCount(lower, in.Keywords)
	}},
	{tag: "concept", weight: 1, count: func(lower string, _ []string, in Input) int {
		return containedCount(lower, in.ConceptTerms)
	}},
	{tag: "domain", weight: 1, count: func(lower string, _ []string, in Input) int {
		return containedCount(lower, in.DomainTerms)
	}},
	{tag: "length", weight: 1, count: func(_ string, words []string, _ Input) int {
		if len(words) >= minCrispWords && len(words) <= maxCrispWords {
			return 1
		}
		return 0
	}},
}

// Sentence scores one sentence against the rule table. The result is
// always non-negative.
func Sentence(s string, in Input) (int, []string) {
	lower := strings.ToLower(s)
	words := strings.Fields(lower)

	total := 0
	var tags []string
	for _, sig := range signals {
		n := sig.count(lower, words, in)
		if n > 0 {
			total += n * sig.weight
			tags = append(tags, sig.tag)
		}
	}
	return total, tags
}

// IsQuestion reports whether a sentence is a question: it ends with "?"
// or opens with an interrogative or auxiliary word. Questions are
// excluded from takeaway candidacy; no declarative transformation is
// attempted.
func IsQuestion(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	first := strings.ToLower(strings.Fields(trimmed)[0])
	return interrogatives[strings.Trim(first, ".,!?;:")]
}

// TakeawayCandidates scores sentences for takeaway selection in
// discovery order. Sentences already used by another selection, outside
// the [20,200] character band, or identified as questions are excluded
// before scoring.
func TakeawayCandidates(sentences []string, in Input, used map[string]bool) []types.Candidate {
	var out []types.Candidate
	for _, s := range sentences {
		if used[strings.ToLower(s)] {
			continue
		}
		if len(s) < minTakeawayChars || len(s) > maxTakeawayChars {
			continue
		}
		if IsQuestion(s) {
			continue
		}
		sc, tags := Sentence(s, in)
		out = append(out, types.Candidate{Text: s, Score: sc, Tags: tags})
	}
	return out
}

// SplitDomainVocabulary parses the user's comma-separated vocabulary
// string into lowercase terms.
func SplitDomainVocabulary(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

func containedCount(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if t != "" && strings.Contains(lower, strings.ToLower(t)) {
			n++
		}
	}
	return n
}
