// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize strips document artifacts from pasted excerpts and
// repairs common tokenization damage. Clean is pure and total: absence
// of a pattern is a no-op, and a second pass produces no further change.
package sanitize

import (
	"regexp"
	"strings"
)

// metadataKeys are recognized document-metadata line prefixes. A line whose
// first token is one of these keys followed by a colon is dropped entirely.
var metadataKeys = []string{
	"section",
	"title",
	"chapter",
	"level",
	"word-count",
	"word count",
	"source",
	"module",
	"author",
	"page",
}

// boilerplatePhrases are removed case-insensitively anywhere in the text.
var boilerplatePhrases = []string{
	"all rights reserved",
	"for internal distribution only",
	"do not distribute",
	"unauthorized reproduction is prohibited",
	"copyright notice",
}

// crossRefPatterns match cross-reference artifacts left behind by upstream
// text extraction: "see 12", figure and table labels, and leading
// numeric or markup tokens at line starts.
var crossRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsee \d+(\.\d+)*\b`),
	regexp.MustCompile(`(?i)\bsee (section|chapter|figure|table) \d+(\.\d+)*\b`),
	regexp.MustCompile(`(?i)\b(figure|fig\.|table) \d+(\.\d+)*[:.]?`),
	regexp.MustCompile(`(?m)^[ \t]*\d+(\.\d+)*[.)]?[ \t]+`),
	regexp.MustCompile(`(?m)^[ \t]*[#>*\-]+[ \t]+`),
}

// placeholderLine matches evidence-placeholder lines inserted by upstream
// tooling when no supporting quote was available.
var placeholderLine = regexp.MustCompile(`(?im)^[ \t]*evidence[ \t]*:.*$`)

// placeholderQuotes are literal placeholder tokens removed wherever they occur.
var placeholderQuotes = []string{
	`"Not provided"`,
	`'Not provided'`,
}

// repairTable holds known broken-token corrections applied verbatim before
// the general single-consonant join. Upstream extraction both splits words
// ("in agile" -> "inagile" reversed here) and shifts spaces one position
// ("a mindset" -> "am indset").
var repairTable = []struct {
	broken, fixed string
}{
	{"am indset", "a mindset"},
	{"inagile", "in agile"},
	{"inthe", "in the"},
	{"ofthe", "of the"},
	{"tothe", "to the"},
	{"andthe", "and the"},
}

// splitConsonant matches a lone consonant split off the front of the next
// word: one consonant, whitespace, then a lowercase word of length >= 2.
// "a" and "i" are legitimate one-letter words and are never joined.
var splitConsonant = regexp.MustCompile(`\b([bcdfghjklmnpqrstvwxyz])\s+([a-z]{2,})\b`)

// sentenceTerm splits text on runs of sentence-terminal punctuation.
var sentenceTerm = regexp.MustCompile(`[.!?]+`)

// whitespaceRun matches any run of whitespace characters.
var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean applies the ordered sanitization passes to text. Order matters:
// later passes assume earlier cleanup (sentence dedup assumes artifacts
// are gone, whitespace collapse runs last). Empty input yields "".
func Clean(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = dropMetadataLines(text)
	text = dropBoilerplate(text)
	text = dropCrossRefs(text)
	text = dropPlaceholders(text)
	text = repairTokens(text)
	text = dedupeSentences(text)
	return collapseWhitespace(text)
}

// dropMetadataLines removes every line whose first token is a recognized
// metadata key followed by a colon. The whole line goes, not just the key.
func dropMetadataLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !isMetadataLine(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func isMetadataLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, key := range metadataKeys {
		if strings.HasPrefix(lower, key+":") {
			return true
		}
	}
	return false
}

func dropBoilerplate(text string) string {
	for _, phrase := range boilerplatePhrases {
		for {
			idx := strings.Index(strings.ToLower(text), phrase)
			if idx < 0 {
				break
			}
			text = text[:idx] + text[idx+len(phrase):]
		}
	}
	return text
}

func dropCrossRefs(text string) string {
	for _, p := range crossRefPatterns {
		text = p.ReplaceAllString(text, "")
	}
	return text
}

func dropPlaceholders(text string) string {
	text = placeholderLine.ReplaceAllString(text, "")
	for _, q := range placeholderQuotes {
		text = strings.ReplaceAll(text, q, "")
	}
	return text
}

// repairTokens applies the fixed repair table, then joins lone split
// consonants back onto the following word. The join is a best-effort
// heuristic: a legitimate consonant-then-word sequence gets merged too.
func repairTokens(text string) string {
	for _, r := range repairTable {
		text = strings.ReplaceAll(text, r.broken, r.fixed)
	}
	return splitConsonant.ReplaceAllString(text, "$1$2")
}

// dedupeSentences keeps the first occurrence of each sentence, compared
// case-insensitively after trimming. Text with no terminal punctuation is
// one sentence and passes through unchanged.
func dedupeSentences(text string) string {
	if !strings.ContainsAny(text, ".!?") {
		return text
	}
	parts := sentenceTerm.Split(text, -1)
	seen := make(map[string]bool, len(parts))
	var kept []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(whitespaceRun.ReplaceAllString(part, " "))
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, trimmed)
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
