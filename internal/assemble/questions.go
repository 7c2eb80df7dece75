// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"strings"

	"github.com/pdiddy/notegen/internal/score"
	"github.com/pdiddy/notegen/internal/segment"
	"github.com/pdiddy/notegen/pkg/types"
)

// questionTemplate binds one fixed question slot to the trigger words
// that select its answer sentence. Templates are evaluated in order; a
// sentence claimed by one slot is removed from the pool.
type questionTemplate struct {
	question string
	triggers []string
}

var questionTemplates = [5]questionTemplate{
	{
		question: "What is the main idea of this excerpt?",
		triggers: []string{"is", "refers to", "means", "about", "describes"},
	},
	{
		question: "Why does this topic matter?",
		triggers: []string{"because", "important", "matter", "value", "benefit", "helps"},
	},
	{
		question: "How is this applied in practice?",
		triggers: []string{"use", "apply", "practice", "process", "step", "approach"},
	},
	{
		question: "Which key terms or concepts are defined?",
		triggers: []string{"defined", "definition", "term", "concept", "known as", "called"},
	},
	{
		question: "What outcomes or results are described?",
		triggers: []string{"result", "outcome", "impact", "lead", "achieve", "improve"},
	},
}

const (
	// minFallbackAnswerLen is the minimum length for a sentence claimed by
	// the no-trigger-match fallback.
	minFallbackAnswerLen = 40

	// minSharedContentWords is how many content words (length > 4) a
	// related sentence must share with the primary answer sentence.
	minSharedContentWords = 2

	// relatedSimilarityCap keeps related sentences from restating the
	// primary sentence.
	relatedSimilarityCap = 0.7

	// evidenceMaxLen bounds the literal quote attached in strict mode.
	evidenceMaxLen = 90
)

// fallbackAnswer fills a slot when no sentence in the excerpt matches.
const fallbackAnswer = "The excerpt does not address this directly; review the source material."

// buildQuestions fills the five fixed question slots from the sentence
// pool. Each slot takes the first unused sentence containing a trigger
// word, falling back to the first unused sentence of reasonable length,
// and finally to a fixed answer marked for review. The primary sentence
// is paired with at most one related sentence to form the answer.
func buildQuestions(sentences []string, strict bool, used map[string]bool) []types.QAItem {
	items := make([]types.QAItem, 0, len(questionTemplates))

	for _, tpl := range questionTemplates {
		primary := matchTrigger(sentences, tpl.triggers, used)
		if primary == "" {
			primary = firstLongUnused(sentences, used)
		}

		item := types.QAItem{Question: tpl.question}
		if primary == "" {
			item.Answer = fallbackAnswer
			item.NeedsReview = true
			items = append(items, item)
			continue
		}

		used[strings.ToLower(primary)] = true
		answer := primary
		if related := relatedSentence(primary, sentences, used); related != "" {
			used[strings.ToLower(related)] = true
			answer = segment.EnsureTerminal(primary) + " " + related
		}
		item.Answer = segment.EnsureTerminal(answer)
		if strict {
			item.Evidence = quote(primary)
		}
		items = append(items, item)
	}
	return items
}

// matchTrigger returns the first unused sentence containing any trigger
// word, case-insensitively.
func matchTrigger(sentences, triggers []string, used map[string]bool) string {
	for _, s := range sentences {
		if used[strings.ToLower(s)] {
			continue
		}
		lower := strings.ToLower(s)
		for _, t := range triggers {
			if strings.Contains(lower, t) {
				return s
			}
		}
	}
	return ""
}

func firstLongUnused(sentences []string, used map[string]bool) string {
	for _, s := range sentences {
		if !used[strings.ToLower(s)] && len(s) >= minFallbackAnswerLen {
			return s
		}
	}
	return ""
}

// relatedSentence finds one unused sentence sharing enough content words
// with the primary to extend the answer without restating it.
func relatedSentence(primary string, sentences []string, used map[string]bool) string {
	content := contentWords(primary)
	for _, s := range sentences {
		if used[strings.ToLower(s)] {
			continue
		}
		shared := 0
		for w := range contentWords(s) {
			if content[w] {
				shared++
			}
		}
		if shared < minSharedContentWords {
			continue
		}
		if score.Similarity(primary, s) > relatedSimilarityCap {
			continue
		}
		return s
	}
	return ""
}

// contentWords collects the sentence's lowercase words longer than four
// characters.
func contentWords(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range segment.Words(s) {
		if len(w) > 4 {
			set[w] = true
		}
	}
	return set
}

// quote trims a sentence to a short literal evidence quote, cut at a word
// boundary. No ellipsis is appended; validation forbids them in answers
// and the renderer quotes evidence verbatim.
func quote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= evidenceMaxLen {
		return s
	}
	cut := strings.LastIndex(s[:evidenceMaxLen], " ")
	if cut <= 0 {
		cut = evidenceMaxLen
	}
	return strings.TrimRight(s[:cut], ".,;: ")
}
