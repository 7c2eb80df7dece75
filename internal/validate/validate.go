// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks an assembled note against its structural
// invariants. Validation is advisory: it never mutates note content, it
// only reports violations; callers decide whether to block export.
package validate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/notegen/internal/segment"
	"github.com/pdiddy/notegen/pkg/types"
)

const (
	minKeywords     = 5
	maxKeywords     = 7
	requiredQAs     = 5
	minTakeaways    = 5
	maxTakeaways    = 7
	minSummarySents = 4
	maxSummarySents = 8
)

// Note runs every structural check and collects one distinct message per
// violated invariant. In deferred-takeaway (strict) mode the takeaway
// count reflects the caller's current selection, so an unfinalized note
// reports a takeaway-count violation until selection completes.
func Note(n *types.Note) types.ValidationResult {
	var errs []string

	if len(n.Keywords) < minKeywords || len(n.Keywords) > maxKeywords {
		errs = append(errs, fmt.Sprintf("keyword count %d outside [%d,%d]", len(n.Keywords), minKeywords, maxKeywords))
	}
	if len(n.Questions) < requiredQAs {
		errs = append(errs, fmt.Sprintf("question count %d below required %d", len(n.Questions), requiredQAs))
	}
	if len(n.Takeaways) < minTakeaways || len(n.Takeaways) > maxTakeaways {
		errs = append(errs, fmt.Sprintf("takeaway count %d outside [%d,%d]", len(n.Takeaways), minTakeaways, maxTakeaways))
	}

	sentCount := len(segment.Sentences(n.Summary, 1))
	if sentCount < minSummarySents || sentCount > maxSummarySents {
		errs = append(errs, fmt.Sprintf("summary has %d sentences, want [%d,%d]", sentCount, minSummarySents, maxSummarySents))
	}

	for i, qa := range n.Questions {
		if !endsTerminal(qa.Answer) {
			errs = append(errs, fmt.Sprintf("answer %d missing terminal punctuation", i+1))
		}
		if strings.Contains(qa.Answer, "...") {
			errs = append(errs, fmt.Sprintf("answer %d contains an ellipsis", i+1))
		}
	}

	if dup := firstDuplicate(n.Keywords); dup != "" {
		errs = append(errs, fmt.Sprintf("duplicate keyword %q", dup))
	}

	questionTexts := make([]string, len(n.Questions))
	for i, qa := range n.Questions {
		questionTexts[i] = qa.Question
	}
	if dup := firstDuplicate(questionTexts); dup != "" {
		errs = append(errs, fmt.Sprintf("duplicate question %q", dup))
	}

	return types.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Apply runs Note and annotates the note's IsValid and ValidationErrors
// fields in place. Idempotent: re-applying with unchanged content yields
// the same result.
func Apply(n *types.Note) types.ValidationResult {
	res := Note(n)
	n.IsValid = res.IsValid
	n.ValidationErrors = res.Errors
	return res
}

func endsTerminal(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// firstDuplicate returns the first case-insensitively repeated entry, or
// "" when all entries are distinct.
func firstDuplicate(items []string) string {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it))
		if seen[key] {
			return it
		}
		seen[key] = true
	}
	return ""
}
