package structure

import "strings"

// Filter suppresses classifier false positives using content-based
// exclusion rules: boilerplate shapes (captions, page numbers, emails,
// article metadata), form-field labels, and navigational boilerplate.
// The classifier is deliberately permissive; the filter encodes what
// real headings are not.
type Filter struct {
	cfg Config
}

// NewFilter creates a filter with the generic configuration
func NewFilter() *Filter {
	return &Filter{cfg: DefaultConfig()}
}

// NewFilterWithConfig creates a filter with a custom configuration
func NewFilterWithConfig(cfg Config) *Filter {
	return &Filter{cfg: cfg}
}

// Keep reports whether a classified candidate survives the exclusion
// rules. A pattern-matched candidate is still rejected when it matches
// a form-field phrase, since numbered form fields incidentally match
// numbering patterns.
func (f *Filter) Keep(c Candidate) bool {
	for _, re := range f.cfg.SkipPatterns {
		if re.MatchString(c.Text) {
			return false
		}
	}

	lower := strings.ToLower(c.Text)
	for _, phrase := range f.cfg.FormFieldPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	for _, marker := range f.cfg.NavigationMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	return true
}
