// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine orchestrates the note generation pipeline: sanitize,
// segment, extract concepts, score, deduplicate, assemble, validate.
// Each Generate call is one synchronous unit of work over its own
// request; the engine keeps no state between calls.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/notegen/internal/assemble"
	"github.com/pdiddy/notegen/internal/concepts"
	"github.com/pdiddy/notegen/internal/sanitize"
	"github.com/pdiddy/notegen/internal/score"
	"github.com/pdiddy/notegen/internal/segment"
	"github.com/pdiddy/notegen/pkg/types"
)

// ErrInputTooShort reports an excerpt below the configured word-count
// threshold. Generation is not attempted.
var ErrInputTooShort = errors.New("excerpt below minimum word count")

// minTakeawaySentenceLen filters the sentence pool for takeaway scoring.
const minTakeawaySentenceLen = 15

// Engine runs the extraction pipeline with a fixed configuration.
type Engine struct {
	cfg types.EngineConfig
	now func() time.Time
}

// New returns an engine using cfg with defaults applied for any
// zero-valued threshold.
func New(cfg types.EngineConfig) *Engine {
	return &Engine{cfg: cfg.WithDefaults(), now: time.Now}
}

// Result is the outcome of one generation request.
type Result struct {
	// Note is the assembled note, validated. In strict mode its takeaway
	// list is empty until FinalizeTakeaways runs.
	Note *types.Note

	// Suggestions is the scored, deduplicated candidate list ordered by
	// descending score. Populated only in strict mode, for external
	// takeaway selection.
	Suggestions []types.Candidate

	// Warnings lists non-fatal conditions (low candidate count). The
	// note remains usable when warnings are present.
	Warnings []string
}

// Generate runs the full pipeline over one excerpt. Recoverable
// conditions degrade to a flagged note; only a too-short excerpt or an
// unexpected pipeline fault aborts with no note at all.
func (e *Engine) Generate(req types.GenerateRequest) (res *Result, err error) {
	// An unexpected fault anywhere in the pipeline surfaces as a generic
	// failure with no partial note.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("note generation failed: %v", r)
		}
	}()

	threshold := e.cfg.MinWordCount
	if req.Strict {
		threshold = e.cfg.StrictMinWordCount
	}
	wc := segment.CountWords(req.Text)
	if wc < threshold {
		return nil, fmt.Errorf("%w: %d words, need at least %d", ErrInputTooShort, wc, threshold)
	}

	sanitized := sanitize.Clean(req.Text)

	in := score.Input{
		Keywords:     concepts.Keywords(sanitized),
		ConceptTerms: concepts.Extract(sanitized),
		DomainTerms:  score.SplitDomainVocabulary(req.DomainVocabulary),
	}

	sentences := segment.Sentences(sanitized, minTakeawaySentenceLen)
	candidates := score.Dedupe(score.TakeawayCandidates(sentences, in, map[string]bool{}))

	note, warnings := assemble.Build(assemble.Input{
		Sanitized:  sanitized,
		Keywords:   in.Keywords,
		Candidates: candidates,
		Strict:     req.Strict,
		Title:      req.Title,
		Module:     req.Module,
		Now:        e.now(),
	})

	if len(candidates) < e.cfg.MinSuggestions {
		warnings = appendUnique(warnings,
			fmt.Sprintf("%d scored candidates, below the minimum of %d", len(candidates), e.cfg.MinSuggestions))
	}

	res = &Result{Note: note, Warnings: warnings}
	if req.Strict {
		res.Suggestions = assemble.ProposeTakeaways(candidates)
	}
	return res, nil
}

// FinalizeTakeaways installs an externally selected takeaway list on a
// note generated in strict mode and re-validates it. Idempotent for a
// fixed selection.
func (e *Engine) FinalizeTakeaways(n *types.Note, selected []string) types.ValidationResult {
	return assemble.FinalizeTakeaways(n, selected)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
