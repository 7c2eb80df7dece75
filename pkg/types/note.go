// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Candidate is a sentence considered for inclusion as a takeaway or answer,
// carrying a relevance score and the signal identifiers that produced it.
type Candidate struct {
	// Text is the candidate sentence, trimmed, with terminal punctuation.
	Text string `json:"text" yaml:"text"`

	// Score is the non-negative relevance score assigned by the scorer.
	// Candidates whose score reaches zero after a near-duplicate penalty
	// are discarded.
	Score int `json:"score" yaml:"score"`

	// Tags lists the matched-signal identifiers that contributed to the
	// score (e.g. "starter", "verb", "keyword", "concept", "domain", "length").
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// QAItem is one question/answer pair in a note. Exactly five per note,
// one per fixed question slot.
type QAItem struct {
	// Question is the fixed template text for this slot.
	Question string `json:"question" yaml:"question"`

	// Answer is a one-to-three sentence string ending in terminal punctuation.
	Answer string `json:"answer" yaml:"answer"`

	// Evidence is a short literal quote from the source text. Populated
	// only in strict mode.
	Evidence string `json:"evidence,omitempty" yaml:"evidence,omitempty"`

	// NeedsReview marks answers built from fallback text rather than a
	// trigger-matched sentence.
	NeedsReview bool `json:"needs_review,omitempty" yaml:"needs_review,omitempty"`
}

// Note is the aggregate produced by one generation request. It is built
// once per request and mutated only by takeaway reselection, which
// triggers re-validation.
type Note struct {
	// ID is a unique identifier assigned at generation time.
	ID string `json:"id" yaml:"id"`

	// Title is derived from the excerpt's first salient sentence unless
	// supplied by the caller.
	Title string `json:"title" yaml:"title"`

	// Date is the generation timestamp.
	Date time.Time `json:"date" yaml:"date"`

	// Module is an optional caller-supplied course or module label.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Keywords holds 5-7 short phrases, pairwise unique case-insensitively.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Questions holds exactly five QAItems with unique question text.
	Questions []QAItem `json:"questions" yaml:"questions"`

	// Takeaways holds 5-7 unique sentences. Empty until finalized when
	// generation ran in strict (deferred-selection) mode.
	Takeaways []string `json:"takeaways" yaml:"takeaways"`

	// Summary is one paragraph of 4-8 sentences.
	Summary string `json:"summary" yaml:"summary"`

	// IsValid reports whether the note passed structural validation.
	IsValid bool `json:"is_valid" yaml:"is_valid"`

	// ValidationErrors lists the structural invariants the note violates.
	// Validation is advisory: the note remains viewable when invalid.
	ValidationErrors []string `json:"validation_errors,omitempty" yaml:"validation_errors,omitempty"`
}

// ValidationResult is the outcome of checking a note against its
// structural invariants.
type ValidationResult struct {
	IsValid bool     `json:"is_valid" yaml:"is_valid"`
	Errors  []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// GenerateRequest carries one excerpt and its generation modifiers.
// Strict-mode and domain-vocabulary state are request parameters, not
// ambient state, so concurrent requests share nothing.
type GenerateRequest struct {
	// Text is the raw pasted excerpt.
	Text string `json:"text" yaml:"text"`

	// Strict enables evidence quotes, deferred takeaway selection, and
	// the higher word-count threshold.
	Strict bool `json:"strict" yaml:"strict"`

	// DomainVocabulary is a comma-separated list of user-supplied terms
	// fed to the scorer as an extra relevance signal.
	DomainVocabulary string `json:"domain_vocabulary,omitempty" yaml:"domain_vocabulary,omitempty"`

	// Title overrides the derived note title when non-empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Module is an optional course or module label copied onto the note.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`
}
