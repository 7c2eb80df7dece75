// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a note into its export formats. Markdown output
// carries literal HTML comment markers around each section so downstream
// tooling can re-parse the exported note.
package render

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notegen/pkg/types"
)

// Markdown renders the note with fixed section markers. Evidence lines
// appear only in strict mode.
func Markdown(n *types.Note, strict bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	if !n.Date.IsZero() {
		fmt.Fprintf(&b, "Date: %s\n", n.Date.Format("2006-01-02"))
	}
	if n.Module != "" {
		fmt.Fprintf(&b, "Module: %s\n", n.Module)
	}
	b.WriteString("\n")

	b.WriteString("<!-- keywords:start -->\n## Keywords\n\n")
	for _, k := range n.Keywords {
		fmt.Fprintf(&b, "- %s\n", k)
	}
	b.WriteString("<!-- keywords:end -->\n\n")

	b.WriteString("<!-- questions:start -->\n## Questions & Answers\n\n")
	for i, qa := range n.Questions {
		fmt.Fprintf(&b, "- **Q%d:** %s\n", i+1, qa.Question)
		b.WriteString("  <details><summary>Answer</summary>\n\n")
		fmt.Fprintf(&b, "  %s\n", qa.Answer)
		if strict && qa.Evidence != "" {
			fmt.Fprintf(&b, "\n  Evidence: %q\n", qa.Evidence)
		}
		if qa.NeedsReview {
			b.WriteString("\n  _Needs review._\n")
		}
		b.WriteString("\n  </details>\n")
	}
	b.WriteString("<!-- questions:end -->\n\n")

	b.WriteString("<!-- takeaways:start -->\n## Takeaways\n\n")
	for _, t := range n.Takeaways {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	b.WriteString("<!-- takeaways:end -->\n\n")

	b.WriteString("<!-- summary:start -->\n## Summary\n\n")
	fmt.Fprintf(&b, "%s\n", n.Summary)
	b.WriteString("<!-- summary:end -->\n")

	return b.String()
}

// YAML marshals the full note aggregate.
func YAML(n *types.Note) (string, error) {
	data, err := yaml.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshaling note: %w", err)
	}
	return string(data), nil
}
