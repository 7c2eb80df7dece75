// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"strings"

	"github.com/pdiddy/notegen/internal/score"
	"github.com/pdiddy/notegen/internal/segment"
)

// summarySlot is one thematic position in the summary paragraph. Slots
// are filled in order: the first sentence matching any slot keyword wins,
// otherwise the slot's fixed fallback sentence is used.
type summarySlot struct {
	theme    string
	keywords []string
	fallback string
}

var summarySlots = [5]summarySlot{
	{
		theme:    "purpose",
		keywords: []string{"purpose", "goal", "aim", "intend", "help", "understand"},
		fallback: "The excerpt sets out its central purpose early on.",
	},
	{
		theme:    "structure",
		keywords: []string{"plan", "structure", "framework", "organize", "step", "phase"},
		fallback: "It organizes the material into a clear working structure.",
	},
	{
		theme:    "mindset",
		keywords: []string{"mindset", "attitude", "culture", "think", "belief"},
		fallback: "A particular way of thinking underpins the argument.",
	},
	{
		theme:    "scope",
		keywords: []string{"scope", "cover", "focus", "limit", "within"},
		fallback: "The scope of the discussion is kept deliberately narrow.",
	},
	{
		theme:    "value",
		keywords: []string{"value", "benefit", "outcome", "result", "impact"},
		fallback: "The practical value of the ideas is made explicit.",
	},
}

// reserveSentences top up the paragraph when near-duplicate filtering
// leaves fewer than the minimum sentence count.
var reserveSentences = []string{
	"Key terms are introduced alongside the ideas they support.",
	"Examples ground the main points in concrete situations.",
}

const (
	maxSummarySentences = 6
	minSummarySentences = 4
	slotSimilarityCap   = 0.7
	minSlotSentenceLen  = 15
)

// buildSummary fills the five thematic slots from the sanitized text and
// joins them into one paragraph. Slot sentences too similar to an
// earlier slot are filtered; the paragraph is capped at six sentences
// and topped up from the reserve list when filtering leaves it short.
func buildSummary(sanitized string, used map[string]bool) string {
	sentences := segment.Sentences(sanitized, minSlotSentenceLen)

	var parts []string
	for _, slot := range summarySlots {
		s := firstMatching(sentences, slot.keywords, used)
		if s == "" {
			s = slot.fallback
		}
		if tooSimilar(s, parts) {
			continue
		}
		parts = append(parts, segment.EnsureTerminal(s))
		if len(parts) >= maxSummarySentences {
			break
		}
	}

	for _, r := range reserveSentences {
		if len(parts) >= minSummarySentences {
			break
		}
		if !tooSimilar(r, parts) {
			parts = append(parts, r)
		}
	}

	return strings.Join(parts, " ")
}

func firstMatching(sentences, keywords []string, used map[string]bool) string {
	for _, s := range sentences {
		if used[strings.ToLower(s)] {
			continue
		}
		lower := strings.ToLower(s)
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return s
			}
		}
	}
	return ""
}

func tooSimilar(s string, earlier []string) bool {
	for _, e := range earlier {
		if score.Similarity(s, e) > slotSimilarityCap {
			return true
		}
	}
	return false
}
