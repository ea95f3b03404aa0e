package structure

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

const (
	// lineTolerance is the baseline distance, as a fraction of font
	// size, within which fragments belong to the same visual line
	lineTolerance = 0.5

	// wordGapRatio is the horizontal gap, as a fraction of font size,
	// above which adjacent fragments get a separating space
	wordGapRatio = 0.3
)

// BuildLines groups a page's positioned fragments into visual lines:
// fragments with near-equal baselines join one line, sorted left to
// right and concatenated with spaces on word gaps. Lines are returned
// top to bottom.
func BuildLines(fragments []model.TextFragment) []model.Line {
	frags := make([]model.TextFragment, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f.Text) != "" {
			frags = append(frags, f)
		}
	}
	if len(frags) == 0 {
		return nil
	}

	// Top of page first (PDF coordinates, Y up), then left to right.
	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].BBox.Y != frags[j].BBox.Y {
			return frags[i].BBox.Y > frags[j].BBox.Y
		}
		return frags[i].BBox.X < frags[j].BBox.X
	})

	var lines []model.Line
	var group []model.TextFragment

	flush := func() {
		if len(group) > 0 {
			lines = append(lines, assembleLine(group))
			group = nil
		}
	}

	for _, f := range frags {
		if len(group) > 0 {
			ref := group[0]
			tol := lineTolerance * maxFloat(ref.FontSize, 1)
			if absFloat(f.BBox.Y-ref.BBox.Y) > tol {
				flush()
			}
		}
		group = append(group, f)
	}
	flush()

	return lines
}

// assembleLine concatenates one baseline group into a Line.
func assembleLine(group []model.TextFragment) model.Line {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].BBox.X < group[j].BBox.X
	})

	var sb strings.Builder
	var maxSize float64
	bold := false
	bbox := group[0].BBox

	cursor := group[0].BBox.Left()
	for _, f := range group {
		if sb.Len() > 0 && f.BBox.Left()-cursor > wordGapRatio*maxFloat(f.FontSize, 1) {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Text)
		cursor = f.BBox.Right()

		if f.FontSize > maxSize {
			maxSize = f.FontSize
		}
		bold = bold || f.Bold
		bbox = bbox.Union(f.BBox)
	}

	return model.Line{
		Text:        normalizeSpace(sb.String()),
		Fragments:   group,
		MaxFontSize: maxSize,
		Bold:        bold,
		BBox:        bbox,
		Page:        group[0].Page,
	}
}

// normalizeSpace collapses runs of whitespace into single spaces and
// trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absFloat(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
