package structure

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func plainLine(text string, bold bool) model.Line {
	return model.Line{Text: text, Bold: bold, MaxFontSize: 10, Page: 1}
}

func TestMatchPatternGeneric(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		text      string
		bold      bool
		wantLevel model.HeadingLevel
		wantMatch bool
	}{
		{"numbered top level", "1. Introduction", false, model.LevelH1, true},
		{"numbered second level", "2.1 Background", false, model.LevelH3, true},
		{"numbered third level", "3.2.1 Details", false, model.LevelH4, true},
		{"all caps multiword", "TABLE OF CONTENTS", false, model.LevelH1, true},
		{"all caps single word", "INTRODUCTION", false, model.LevelUnknown, false},
		{"chapter heading", "Chapter 7", false, model.LevelH2, true},
		{"section heading", "Section 12", false, model.LevelH2, true},
		{"roman numeral", "IV. Methodology", false, model.LevelH2, true},
		{"lettered section", "B. Second Part", false, model.LevelH2, true},
		{"plain prose", "This is ordinary text", false, model.LevelUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := matchPattern(plainLine(tt.text, tt.bold), tt.text, cfg)
			if ok != tt.wantMatch || level != tt.wantLevel {
				t.Errorf("matchPattern(%q) = (%v, %v), want (%v, %v)",
					tt.text, level, ok, tt.wantLevel, tt.wantMatch)
			}
		})
	}
}

func TestMatchPatternDemotion(t *testing.T) {
	cfg := DefaultConfig()

	// Committee boilerplate reuses top-level numbering but is not a
	// top-level section.
	level, ok := matchPattern(plainLine("3. Terms of Reference", false), "3. Terms of Reference", cfg)
	if !ok || level != model.LevelH3 {
		t.Errorf("got (%v, %v), want (H3, true)", level, ok)
	}

	level, ok = matchPattern(plainLine("3. Results", false), "3. Results", cfg)
	if !ok || level != model.LevelH1 {
		t.Errorf("got (%v, %v), want (H1, true)", level, ok)
	}
}

func TestMatchPatternAcademic(t *testing.T) {
	cfg := AcademicConfig()

	tests := []struct {
		name      string
		text      string
		bold      bool
		wantLevel model.HeadingLevel
		wantMatch bool
	}{
		{"deepest first", "2.1.3 Ablation Study", false, model.LevelH3, true},
		{"second level", "2.1 Background", false, model.LevelH2, true},
		{"top level", "2 Related Work", false, model.LevelH1, true},
		{"top level with dot", "4. Evaluation", false, model.LevelH1, true},
		{"references bold", "References", true, model.LevelH1, true},
		{"references not bold", "References", false, model.LevelUnknown, false},
		{"appendix bold", "Appendix A", true, model.LevelH1, true},
		{"caps needs bold", "EXPERIMENTAL SETUP", false, model.LevelUnknown, false},
		{"caps bold", "EXPERIMENTAL SETUP", true, model.LevelH1, true},
		{"numbering needs capital", "2.1 background", false, model.LevelUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := matchPattern(plainLine(tt.text, tt.bold), tt.text, cfg)
			if ok != tt.wantMatch || level != tt.wantLevel {
				t.Errorf("matchPattern(%q) = (%v, %v), want (%v, %v)",
					tt.text, level, ok, tt.wantLevel, tt.wantMatch)
			}
		})
	}
}

func TestMatchesVocabulary(t *testing.T) {
	vocab := []string{"preamble", "terms of reference"}

	if !matchesVocabulary("1. PREAMBLE", vocab) {
		t.Error("expected case-insensitive vocabulary match")
	}
	if matchesVocabulary("1. Overview", vocab) {
		t.Error("unexpected vocabulary match")
	}
}
