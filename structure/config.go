package structure

import (
	"fmt"
	"regexp"

	"github.com/tsawler/outliner/model"
)

// Profile names a heuristic bundle tuned for a document genre. All
// profiles implement the same classifier/filter contract; they differ
// only in pattern tables, floors, and exclusion vocabularies.
type Profile int

const (
	ProfileGeneric Profile = iota
	ProfileAcademic
	ProfileForm
)

// String returns the profile name
func (p Profile) String() string {
	switch p {
	case ProfileGeneric:
		return "generic"
	case ProfileAcademic:
		return "academic"
	case ProfileForm:
		return "form"
	default:
		return "unknown"
	}
}

// ParseProfile resolves a profile by name
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "generic", "":
		return ProfileGeneric, nil
	case "academic":
		return ProfileAcademic, nil
	case "form":
		return ProfileForm, nil
	default:
		return ProfileGeneric, fmt.Errorf("unknown profile %q", s)
	}
}

// Config holds every tunable the engine consults: font-size floors,
// positional ratios, the ordered pattern table, and the exclusion
// vocabularies. A Config is treated as immutable once an Engine is
// constructed with it.
type Config struct {
	// TitleFloor is the minimum font size for a first-page line to be
	// considered a content-title candidate
	TitleFloor float64

	// H1Floor, H2Floor, H3Floor are the document-wide minimums for the
	// per-page adaptive bands. They must be ordered H1 > H2 > H3.
	H1Floor float64
	H2Floor float64
	H3Floor float64

	// MaxPages caps how many pages of a document are processed
	// (0 = no cap)
	MaxPages int

	// MaxLineLength is the length above which a line is always prose
	MaxLineLength int

	// MaxHeadingLength bounds the looks-like-a-heading check
	MaxHeadingLength int

	// TopBandRatio is the fraction of page height (from the top) that
	// title candidates may occupy
	TopBandRatio float64

	// TitleSizeRatio is the fraction of the top candidate's font size a
	// line must reach to join a multi-line title
	TitleSizeRatio float64

	// TitleProximity is the vertical distance (layout units) within
	// which lines merge into a multi-line title
	TitleProximity float64

	// TitleSimilarity is the similarity score at or above which a line
	// is treated as a repeat of the document title
	TitleSimilarity float64

	// EdgeBandRatio excludes lines in the top/bottom band of a page
	// from heading consideration (0 disables)
	EdgeBandRatio float64

	// H4BandRatio opens an auxiliary band just below the H3 threshold
	// for deeply nested callouts (0 disables)
	H4BandRatio float64

	// EmitH4 keeps auxiliary-band headings as H4 in the output; when
	// false they are clamped to H3
	EmitH4 bool

	// Patterns is the ordered pattern table; first match wins
	Patterns []HeadingPattern

	// DemoteVocabulary lowers a demotable pattern hit (appendix and
	// committee boilerplate that reuses top-level numbering)
	DemoteVocabulary []string

	// SkipPatterns reject boilerplate shapes outright: captions, page
	// numbers, bare numerics, emails, article metadata
	SkipPatterns []*regexp.Regexp

	// FormFieldPhrases reject form-field labels, including pattern hits
	// that incidentally match numbering patterns
	FormFieldPhrases []string

	// NavigationMarkers reject contact/footer boilerplate, matched
	// case-insensitively as substrings
	NavigationMarkers []string
}

// baseSkipPatterns are the boilerplate shapes no genre treats as
// structural.
func baseSkipPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(fig\.|figure|table|equation)\s*\d+`),
		regexp.MustCompile(`(?i)^page\s+\d+`),
		regexp.MustCompile(`^\d+\s*$`),
		regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	}
}

// DefaultConfig returns the generic profile tuning.
func DefaultConfig() Config {
	return Config{
		TitleFloor:       10,
		H1Floor:          14,
		H2Floor:          12,
		H3Floor:          10,
		MaxPages:         50,
		MaxLineLength:    200,
		MaxHeadingLength: 100,
		TopBandRatio:     0.40,
		TitleSizeRatio:   0.90,
		TitleProximity:   50,
		TitleSimilarity:  0.8,
		EdgeBandRatio:    0,
		H4BandRatio:      0.9,
		EmitH4:           false,
		Patterns: []HeadingPattern{
			{Regex: regexp.MustCompile(`^\d+\.\d+\.\d+\s+`), Level: model.LevelH4},
			{Regex: regexp.MustCompile(`^\d+\.\d+\s+`), Level: model.LevelH3},
			{Regex: regexp.MustCompile(`^\d+\.\s+`), Level: model.LevelH1, Demote: true, DemoteTo: model.LevelH3},
			{Regex: regexp.MustCompile(`^[A-Z][A-Z\s]+$`), Level: model.LevelH1, MultiWord: true},
			{Regex: regexp.MustCompile(`(?i)^chapter\s+\d+`), Level: model.LevelH2},
			{Regex: regexp.MustCompile(`(?i)^section\s+\d+`), Level: model.LevelH2},
			{Regex: regexp.MustCompile(`^[IVXLCDM]+\.\s+`), Level: model.LevelH2},
			{Regex: regexp.MustCompile(`^[A-Z]\.\s+`), Level: model.LevelH2},
		},
		DemoteVocabulary: []string{"preamble", "terms of reference", "membership"},
		SkipPatterns:     baseSkipPatterns(),
		FormFieldPhrases: []string{
			"required.",
			"name of",
			"date of",
			"whether",
			"signature of",
			"amount of advance",
			"advance required",
			"home town",
			"headquarters to",
			"persons in respect",
			"i declare",
			"particulars furnished",
		},
		NavigationMarkers: []string{"www.", "http", "rsvp", ".com", "email", "phone"},
	}
}

// AcademicConfig returns the tuning for academic papers: explicit
// section numbering maps one-to-one onto levels, special sections
// (References, Appendix) count as top level when bold, and author or
// affiliation lines are excluded.
func AcademicConfig() Config {
	cfg := DefaultConfig()
	cfg.EdgeBandRatio = 0.05
	cfg.Patterns = []HeadingPattern{
		{Regex: regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+[A-Z]`), Level: model.LevelH3},
		{Regex: regexp.MustCompile(`^\d+\.\d+\.?\s+[A-Z]`), Level: model.LevelH2},
		{Regex: regexp.MustCompile(`^\d+\.?\s+[A-Z]`), Level: model.LevelH1},
		{Regex: regexp.MustCompile(`(?i)^(references?|bibliography|conclusions?|acknowledgements?|acknowledgments?|abstract)$`), Level: model.LevelH1, RequireBold: true},
		{Regex: regexp.MustCompile(`(?i)^appendix\s*[A-Z]?\b`), Level: model.LevelH1, RequireBold: true},
		{Regex: regexp.MustCompile(`^[A-Z][A-Z\s]+$`), Level: model.LevelH1, MultiWord: true, RequireBold: true},
	}
	cfg.SkipPatterns = append(baseSkipPatterns(),
		regexp.MustCompile(`^\*?[A-Z][a-z]+\s+[A-Z][a-z]+(\s+[A-Z][a-z]+)*\s*\d*\s*$`),
		regexp.MustCompile(`^(Department|University|College|Institute)`),
		regexp.MustCompile(`^Abstract\.$|^Keywords:|^DOI:`),
	)
	return cfg
}

// FormConfig returns the tuning for structured forms, whose numbered
// field labels incidentally match section-numbering patterns.
func FormConfig() Config {
	cfg := DefaultConfig()
	cfg.FormFieldPhrases = append(cfg.FormFieldPhrases,
		"date of entering",
		"pay +",
		"whether permanent",
		"whether wife",
		"whether the concession",
		"s.no",
		"relationship",
	)
	return cfg
}

// ConfigForProfile returns the named profile's configuration.
func ConfigForProfile(p Profile) Config {
	switch p {
	case ProfileAcademic:
		return AcademicConfig()
	case ProfileForm:
		return FormConfig()
	default:
		return DefaultConfig()
	}
}
