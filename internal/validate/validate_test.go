// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notegen/pkg/types"
)

// validNote builds a note satisfying every structural invariant.
func validNote() *types.Note {
	return &types.Note{
		Keywords: []string{"agile", "backlog", "mindset", "roadmap", "customer"},
		Questions: []types.QAItem{
			{Question: "Q1", Answer: "First answer."},
			{Question: "Q2", Answer: "Second answer!"},
			{Question: "Q3", Answer: "Third answer?"},
			{Question: "Q4", Answer: "Fourth answer."},
			{Question: "Q5", Answer: "Fifth answer."},
		},
		Takeaways: []string{"T one.", "T two.", "T three.", "T four.", "T five."},
		Summary:   "Purpose comes first. Structure follows. Mindset matters. Value closes the loop.",
	}
}

func TestNoteValid(t *testing.T) {
	res := Note(validNote())
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestNoteViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *types.Note)
		wantErr string
	}{
		{
			name:    "too few keywords",
			mutate:  func(n *types.Note) { n.Keywords = n.Keywords[:4] },
			wantErr: "keyword count",
		},
		{
			name: "too many keywords",
			mutate: func(n *types.Note) {
				n.Keywords = append(n.Keywords, "one", "two", "three")
			},
			wantErr: "keyword count",
		},
		{
			name:    "missing question",
			mutate:  func(n *types.Note) { n.Questions = n.Questions[:4] },
			wantErr: "question count",
		},
		{
			name:    "too few takeaways",
			mutate:  func(n *types.Note) { n.Takeaways = n.Takeaways[:3] },
			wantErr: "takeaway count",
		},
		{
			name: "too many takeaways",
			mutate: func(n *types.Note) {
				n.Takeaways = append(n.Takeaways, "Six.", "Seven.", "Eight.")
			},
			wantErr: "takeaway count",
		},
		{
			name:    "summary too short",
			mutate:  func(n *types.Note) { n.Summary = "One. Two. Three." },
			wantErr: "summary",
		},
		{
			name:    "answer missing terminal punctuation",
			mutate:  func(n *types.Note) { n.Questions[2].Answer = "unterminated" },
			wantErr: "terminal punctuation",
		},
		{
			name:    "answer contains ellipsis",
			mutate:  func(n *types.Note) { n.Questions[0].Answer = "Trails off... badly." },
			wantErr: "ellipsis",
		},
		{
			name:    "duplicate keyword case-insensitive",
			mutate:  func(n *types.Note) { n.Keywords[4] = "Agile" },
			wantErr: "duplicate keyword",
		},
		{
			name:    "duplicate question text",
			mutate:  func(n *types.Note) { n.Questions[4].Question = "Q1" },
			wantErr: "duplicate question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNote()
			tt.mutate(n)
			res := Note(n)
			require.False(t, res.IsValid)
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			assert.True(t, found, "errors %v missing %q", res.Errors, tt.wantErr)
		})
	}
}

func TestApplyAnnotatesAndIsIdempotent(t *testing.T) {
	n := validNote()
	n.Takeaways = nil

	first := Apply(n)
	require.False(t, n.IsValid)
	require.NotEmpty(t, n.ValidationErrors)

	second := Apply(n)
	assert.Equal(t, first, second)
}

func TestValidationDoesNotMutateContent(t *testing.T) {
	n := validNote()
	n.Questions[0].Answer = "unterminated"
	before := n.Questions[0].Answer

	Note(n)
	assert.Equal(t, before, n.Questions[0].Answer, "validation must not repair content")
}
