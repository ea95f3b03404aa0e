package structure

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// HeadingPattern associates a textual pattern with a heading-level
// hint. Patterns are checked in table order; the first match wins, and
// a pattern hint always takes precedence over font-size gating.
type HeadingPattern struct {
	// Regex is matched against the whitespace-normalized line text
	Regex *regexp.Regexp

	// Level is the hint assigned on a match
	Level model.HeadingLevel

	// MultiWord additionally requires at least two words
	MultiWord bool

	// RequireBold additionally requires the line to be bold
	RequireBold bool

	// Demote lowers the hint to DemoteTo when the line matches the
	// demotion vocabulary
	Demote   bool
	DemoteTo model.HeadingLevel
}

// matchPattern returns the first pattern-level hint for a line, if any.
func matchPattern(line model.Line, text string, cfg Config) (model.HeadingLevel, bool) {
	for _, p := range cfg.Patterns {
		if !p.Regex.MatchString(text) {
			continue
		}
		if p.MultiWord && len(strings.Fields(text)) < 2 {
			continue
		}
		if p.RequireBold && !line.Bold {
			continue
		}
		level := p.Level
		if p.Demote && matchesVocabulary(text, cfg.DemoteVocabulary) {
			level = p.DemoteTo
		}
		return level, true
	}
	return model.LevelUnknown, false
}

// matchesVocabulary reports whether the text contains any vocabulary
// entry, case-insensitively.
func matchesVocabulary(text string, vocab []string) bool {
	lower := strings.ToLower(text)
	for _, v := range vocab {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
