// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble fills the fixed note schema from scored and filtered
// candidates: 5-7 keywords, exactly five Q&A slots, 5-7 takeaways, and a
// one-paragraph summary. Fallback templates cover sparse extractions.
// In strict mode takeaway selection is deferred to the caller through
// ProposeTakeaways and FinalizeTakeaways.
package assemble

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/notegen/internal/segment"
	"github.com/pdiddy/notegen/internal/validate"
	"github.com/pdiddy/notegen/pkg/types"
)

const (
	minTakeaways = 5
	maxTakeaways = 7

	// minQuestionSentenceLen filters the sentence pool used for answers.
	minQuestionSentenceLen = 25

	maxTitleLen = 60
)

// fallbackTakeaways pad the takeaway list when the excerpt yields too few
// scored candidates. Generation still succeeds; the caller receives a
// low-confidence warning.
var fallbackTakeaways = []string{
	"The excerpt's core argument rewards a second, slower reading.",
	"Connect each main point back to the section it came from.",
	"Restate the central idea in your own words to test understanding.",
	"Identify one concrete situation where the idea applies.",
	"Note any terms that remain unclear for follow-up study.",
}

// Input carries everything the assembler needs for one note.
type Input struct {
	// Sanitized is the cleaned excerpt text.
	Sanitized string

	// Keywords is the 5-7 entry keyword list from concept extraction.
	Keywords []string

	// Candidates is the deduplicated scored candidate list in discovery
	// order.
	Candidates []types.Candidate

	// Strict defers takeaway selection and attaches evidence quotes.
	Strict bool

	// Title overrides the derived title when non-empty. Module is copied
	// onto the note verbatim.
	Title  string
	Module string

	// Now is the generation timestamp.
	Now time.Time
}

// Build assembles a fresh note. It returns the note and any non-fatal
// warnings (currently only the insufficient-candidate warning). In strict
// mode the takeaway list is left empty for later finalization.
func Build(in Input) (*types.Note, []string) {
	var warnings []string

	n := &types.Note{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Date:     in.Now,
		Module:   in.Module,
		Keywords: in.Keywords,
	}
	if n.Title == "" {
		n.Title = deriveTitle(in.Sanitized)
	}

	// One shared used-set so no sentence serves two selections.
	used := make(map[string]bool)

	if !in.Strict {
		takeaways, warn := selectTakeaways(in.Candidates, used)
		n.Takeaways = takeaways
		if warn != "" {
			warnings = append(warnings, warn)
		}
	} else if len(in.Candidates) < minTakeaways {
		warnings = append(warnings, insufficientWarning(len(in.Candidates)))
	}

	pool := segment.Sentences(in.Sanitized, minQuestionSentenceLen)
	n.Questions = buildQuestions(pool, in.Strict, used)
	n.Summary = buildSummary(in.Sanitized, used)

	validate.Apply(n)
	return n, warnings
}

// ProposeTakeaways returns the candidate list ordered by descending
// score (discovery order breaks ties) for external selection in deferred
// mode. The input slice is not modified.
func ProposeTakeaways(cands []types.Candidate) []types.Candidate {
	out := make([]types.Candidate, len(cands))
	copy(out, cands)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// FinalizeTakeaways installs the caller's selected sentences as the
// note's takeaway list and re-validates. Exact duplicates are dropped
// case-insensitively; structural bounds are enforced by validation, not
// here, so an out-of-range selection yields a viewable invalid note.
func FinalizeTakeaways(n *types.Note, selected []string) types.ValidationResult {
	seen := make(map[string]bool, len(selected))
	var takeaways []string
	for _, s := range selected {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		takeaways = append(takeaways, segment.EnsureTerminal(s))
	}
	n.Takeaways = takeaways
	return validate.Apply(n)
}

// selectTakeaways picks the top-scoring surviving candidates, sliced to
// the 5-7 band, padding from the fallback templates when extraction came
// up short.
func selectTakeaways(cands []types.Candidate, used map[string]bool) ([]string, string) {
	ranked := ProposeTakeaways(cands)

	var out []string
	seen := make(map[string]bool)
	for _, c := range ranked {
		if len(out) >= maxTakeaways {
			break
		}
		key := strings.ToLower(c.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		used[key] = true
		out = append(out, segment.EnsureTerminal(c.Text))
	}

	warn := ""
	if len(out) < minTakeaways {
		warn = insufficientWarning(len(out))
		for _, f := range fallbackTakeaways {
			if len(out) >= minTakeaways {
				break
			}
			if !seen[strings.ToLower(f)] {
				seen[strings.ToLower(f)] = true
				out = append(out, f)
			}
		}
	}
	return out, warn
}

func insufficientWarning(n int) string {
	return fmt.Sprintf("only %d takeaway candidates scored; minimum is %d, results are low-confidence", n, minTakeaways)
}

// deriveTitle takes the opening words of the first sentence, cut at a
// word boundary.
func deriveTitle(sanitized string) string {
	sentences := segment.Sentences(sanitized, 1)
	if len(sentences) == 0 {
		return "Study Note"
	}
	title := sentences[0]
	if len(title) <= maxTitleLen {
		return title
	}
	cut := strings.LastIndex(title[:maxTitleLen], " ")
	if cut <= 0 {
		cut = maxTitleLen
	}
	return strings.TrimRight(title[:cut], ".,;: ")
}
