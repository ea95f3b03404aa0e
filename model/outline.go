package model

import (
	"encoding/json"
	"fmt"
)

// HeadingLevel represents the hierarchical rank of a heading, H1 being
// the coarsest. H4 is an auxiliary band for deeply nested callouts and
// is only emitted when explicitly enabled.
type HeadingLevel int

const (
	LevelUnknown HeadingLevel = iota
	LevelH1                   // H1 - Main section
	LevelH2                   // H2 - Subsection
	LevelH3                   // H3 - Sub-subsection
	LevelH4                   // H4 - Nested callout (auxiliary)
)

// String returns the wire representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return "unknown"
	}
}

// Valid returns true for the emittable levels H1 through H4
func (l HeadingLevel) Valid() bool {
	return l >= LevelH1 && l <= LevelH4
}

// MarshalJSON encodes the level as its wire string ("H1".."H4")
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a wire string back into a level
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "H4":
		*l = LevelH4
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// Heading is a single entry in a document outline. Headings are
// immutable once emitted by the assembler.
type Heading struct {
	// Level is the heading rank
	Level HeadingLevel `json:"level"`

	// Text is the heading text, whitespace normalized
	Text string `json:"text"`

	// Page is the 1-based page number the heading appears on
	Page int `json:"page"`
}

// Outline is an ordered heading sequence. No two entries share both
// text and page.
type Outline []Heading

// DocumentResult is the complete externally visible output for one
// processed document.
type DocumentResult struct {
	Title   string  `json:"title"`
	Outline Outline `json:"outline"`
}

// Metadata contains document-level information read from the PDF
// information dictionary.
type Metadata struct {
	Title     string
	Author    string
	Creator   string
	Producer  string
	PageCount int
}
