package types

// EngineConfig holds the thresholds surfaced to callers of the note
// generation engine. Scoring weights and rule tables are design constants
// owned by their packages and are deliberately not configurable here.
type EngineConfig struct {
	// MinWordCount is the minimum excerpt word count before generation is
	// attempted in relaxed mode (default 100).
	MinWordCount int `json:"min_word_count" yaml:"min_word_count"`

	// StrictMinWordCount is the minimum excerpt word count in strict mode
	// (default 300).
	StrictMinWordCount int `json:"strict_min_word_count" yaml:"strict_min_word_count"`

	// MinSuggestions is the minimum number of scored takeaway candidates
	// below which a low-confidence warning is raised (default 5).
	MinSuggestions int `json:"min_suggestions" yaml:"min_suggestions"`
}

// WithDefaults returns a copy of the config with zero-valued thresholds
// replaced by their defaults.
func (c EngineConfig) WithDefaults() EngineConfig {
	if c.MinWordCount <= 0 {
		c.MinWordCount = 100
	}
	if c.StrictMinWordCount <= 0 {
		c.StrictMinWordCount = 300
	}
	if c.MinSuggestions <= 0 {
		c.MinSuggestions = 5
	}
	return c
}

// OutputFormat selects the note rendering format.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputYAML     OutputFormat = "yaml"
)
