package structure

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// Candidate is a provisionally classified heading. It carries the
// layout bookkeeping (font size, boldness, pattern provenance) that the
// filter and assembler consult; the bookkeeping is stripped on
// emission.
type Candidate struct {
	Level       model.HeadingLevel
	Text        string
	Page        int
	FontSize    float64
	Bold        bool
	FromPattern bool
}

// Classifier assigns an optional heading level to a line by combining
// pattern-library hints, per-page adaptive font thresholds, and
// boldness. It is deliberately permissive; the Filter applies the
// content-aware second pass.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier with the generic configuration
func NewClassifier() *Classifier {
	return &Classifier{cfg: DefaultConfig()}
}

// NewClassifierWithConfig creates a classifier with a custom configuration
func NewClassifierWithConfig(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify examines one line against the page's thresholds and the
// already-resolved document title. It reports the heading candidate and
// whether the line qualified at all.
func (c *Classifier) Classify(line model.Line, th Thresholds, pageHeight float64, docTitle string) (Candidate, bool) {
	text := normalizeSpace(line.Text)
	length := utf8.RuneCountInString(text)
	if length < 2 {
		return Candidate{}, false
	}
	if length > c.cfg.MaxLineLength {
		// Prose, never a heading.
		return Candidate{}, false
	}

	// Running headers and footers live in the page's edge bands.
	if c.cfg.EdgeBandRatio > 0 && pageHeight > 0 {
		if line.BBox.Bottom() > pageHeight*(1-c.cfg.EdgeBandRatio) ||
			line.BBox.Top() < pageHeight*c.cfg.EdgeBandRatio {
			return Candidate{}, false
		}
	}

	// Never re-emit the document title as a heading.
	if docTitle != "" && Similarity(text, docTitle) >= c.cfg.TitleSimilarity {
		return Candidate{}, false
	}

	if level, ok := matchPattern(line, text, c.cfg); ok {
		return Candidate{
			Level:       level,
			Text:        cleanHeadingText(text),
			Page:        line.Page,
			FontSize:    line.MaxFontSize,
			Bold:        line.Bold,
			FromPattern: true,
		}, true
	}

	level := fontLevel(line.MaxFontSize, th, c.cfg)
	if level == model.LevelUnknown {
		return Candidate{}, false
	}
	if !line.Bold && !looksLikeHeading(text, c.cfg) {
		return Candidate{}, false
	}

	return Candidate{
		Level:    level,
		Text:     cleanHeadingText(text),
		Page:     line.Page,
		FontSize: line.MaxFontSize,
		Bold:     line.Bold,
	}, true
}

// fontLevel derives a heading-level hint from the page's adaptive
// bands, including the auxiliary H4 band just below H3.
func fontLevel(size float64, th Thresholds, cfg Config) model.HeadingLevel {
	switch {
	case size >= th.H1:
		return model.LevelH1
	case size >= th.H2:
		return model.LevelH2
	case size >= th.H3:
		return model.LevelH3
	case cfg.H4BandRatio > 0 && size >= th.H3*cfg.H4BandRatio:
		return model.LevelH4
	}
	return model.LevelUnknown
}

// looksLikeHeading reports whether a non-bold line independently reads
// as a heading: short, uppercase start, and either several capitals or
// full title case.
func looksLikeHeading(text string, cfg Config) bool {
	runes := []rune(text)
	if len(runes) >= cfg.MaxHeadingLength {
		return false
	}
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}

	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if upper >= 2 {
		return true
	}

	words := strings.Fields(text)
	if len(words) >= 2 {
		for _, w := range words {
			if !unicode.IsUpper([]rune(w)[0]) {
				return false
			}
		}
		return true
	}

	return false
}

var (
	leadingBulletRe = regexp.MustCompile(`^[\x{2022}\-\*\+]\s*`)
	leadingDotsRe   = regexp.MustCompile(`^\s*\.+\s*`)
)

// cleanHeadingText strips list markers and artifact punctuation from a
// candidate heading.
func cleanHeadingText(text string) string {
	text = leadingBulletRe.ReplaceAllString(text, "")
	text = leadingDotsRe.ReplaceAllString(text, "")
	return normalizeSpace(text)
}
