package structure

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

// midPageLine places a line well inside the page body at Y 400.
func midPageLine(text string, size float64, bold bool, page int) model.Line {
	return model.Line{
		Text:        text,
		MaxFontSize: size,
		Bold:        bold,
		BBox:        model.NewBBox(72, 400, 300, size),
		Page:        page,
	}
}

var bodyThresholds = Thresholds{H1: 14, H2: 12, H3: 10}

func TestClassifyPatternOverridesFont(t *testing.T) {
	// Small, non-bold text still classifies when a numbering pattern
	// matches.
	c := NewClassifierWithConfig(AcademicConfig())

	cand, ok := c.Classify(midPageLine("2.1 Background", 9, false, 4), bodyThresholds, testPageHeight, "")
	if !ok {
		t.Fatal("expected a candidate")
	}
	if cand.Level != model.LevelH2 {
		t.Errorf("Level = %v, want H2", cand.Level)
	}
	if !cand.FromPattern {
		t.Error("candidate should be marked as pattern-derived")
	}
	if cand.Page != 4 {
		t.Errorf("Page = %d, want 4", cand.Page)
	}
}

func TestClassifyFontBands(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name      string
		size      float64
		wantLevel model.HeadingLevel
	}{
		{"top band", 15, model.LevelH1},
		{"mid band", 12.5, model.LevelH2},
		{"low band", 10.5, model.LevelH3},
		{"auxiliary band", 9.5, model.LevelH4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := c.Classify(midPageLine("Getting Started", tt.size, true, 1), bodyThresholds, testPageHeight, "")
			if !ok {
				t.Fatal("expected a candidate")
			}
			if cand.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", cand.Level, tt.wantLevel)
			}
		})
	}

	// Below the auxiliary band nothing qualifies.
	if _, ok := c.Classify(midPageLine("Getting Started", 8, true, 1), bodyThresholds, testPageHeight, ""); ok {
		t.Error("size below all bands should not classify")
	}
}

func TestClassifyPromotionRules(t *testing.T) {
	c := NewClassifier()

	// Bold text in a band qualifies regardless of shape.
	if _, ok := c.Classify(midPageLine("Summary of findings for review", 15, true, 1), bodyThresholds, testPageHeight, ""); !ok {
		t.Error("bold line in the top band should classify")
	}

	// Non-bold text must independently look like a heading.
	if _, ok := c.Classify(midPageLine("Getting Started", 15, false, 1), bodyThresholds, testPageHeight, ""); !ok {
		t.Error("title-case line in the top band should classify")
	}
	if _, ok := c.Classify(midPageLine("Summary of findings for review", 15, false, 1), bodyThresholds, testPageHeight, ""); ok {
		t.Error("sentence-shaped non-bold line should not classify")
	}
}

func TestClassifyRejectsLongLines(t *testing.T) {
	c := NewClassifier()

	long := strings.Repeat("word ", 50) // > 200 chars
	if _, ok := c.Classify(midPageLine(long, 18, true, 1), bodyThresholds, testPageHeight, ""); ok {
		t.Error("prose-length line should never classify")
	}

	if _, ok := c.Classify(midPageLine("A", 18, true, 1), bodyThresholds, testPageHeight, ""); ok {
		t.Error("single-character line should never classify")
	}
}

// Length limits count characters, not bytes: a long CJK heading stays
// well inside the 200-character prose cutoff even though its UTF-8
// encoding is three times as long.
func TestClassifyCountsRunesNotBytes(t *testing.T) {
	c := NewClassifier()

	cjk := strings.Repeat("章", 150) // 150 runes, 450 bytes
	cand, ok := c.Classify(midPageLine(cjk, 16, true, 1), bodyThresholds, testPageHeight, "")
	if !ok {
		t.Fatal("150-character bold heading should classify")
	}
	if cand.Level != model.LevelH1 {
		t.Errorf("Level = %v, want H1", cand.Level)
	}

	if _, ok := c.Classify(midPageLine(strings.Repeat("章", 201), 16, true, 1), bodyThresholds, testPageHeight, ""); ok {
		t.Error("201-character line should be rejected as prose")
	}
}

func TestClassifySuppressesTitle(t *testing.T) {
	c := NewClassifier()
	title := "Annual Report 2024"

	tests := []string{
		"Annual Report 2024",
		"ANNUAL REPORT 2024",
		"Annual Report", // containment scores 0.9
	}
	for _, text := range tests {
		if _, ok := c.Classify(midPageLine(text, 20, true, 1), bodyThresholds, testPageHeight, title); ok {
			t.Errorf("%q should be suppressed as a title repeat", text)
		}
	}

	// Unrelated text with the bookkeeping intact still classifies.
	if _, ok := c.Classify(midPageLine("Financial Overview", 20, true, 2), bodyThresholds, testPageHeight, title); !ok {
		t.Error("unrelated heading should not be suppressed")
	}
}

func TestClassifyEdgeBands(t *testing.T) {
	cfg := AcademicConfig() // EdgeBandRatio 0.05
	c := NewClassifierWithConfig(cfg)

	header := model.Line{
		Text:        "Running Header",
		MaxFontSize: 12,
		Bold:        true,
		BBox:        model.NewBBox(72, 770, 200, 12),
		Page:        2,
	}
	if _, ok := c.Classify(header, bodyThresholds, testPageHeight, ""); ok {
		t.Error("line in the top edge band should not classify")
	}

	footer := model.Line{
		Text:        "Running Footer",
		MaxFontSize: 12,
		Bold:        true,
		BBox:        model.NewBBox(72, 10, 200, 12),
		Page:        2,
	}
	if _, ok := c.Classify(footer, bodyThresholds, testPageHeight, ""); ok {
		t.Error("line in the bottom edge band should not classify")
	}
}

func TestCleanHeadingText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"• Overview Section", "Overview Section"},
		{"- Overview Section", "Overview Section"},
		{"... Overview", "Overview"},
		{"Overview  Section", "Overview Section"},
		{"Plain Heading", "Plain Heading"},
	}
	for _, tt := range tests {
		if got := cleanHeadingText(tt.in); got != tt.want {
			t.Errorf("cleanHeadingText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLooksLikeHeading(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		text string
		want bool
	}{
		{"Getting Started", true},
		{"OVERVIEW", true},
		{"The Long Road Home", true},
		{"overview", false},
		{"The quick brown fox jumps", false},
		{strings.Repeat("A ", 60), false},
		// 60 runes but 120 bytes: character count is what bounds the check.
		{"ÉÉ" + strings.Repeat("é", 58), true},
	}
	for _, tt := range tests {
		if got := looksLikeHeading(tt.text, cfg); got != tt.want {
			t.Errorf("looksLikeHeading(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
