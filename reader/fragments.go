package reader

import (
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// US Letter fallback when no MediaBox can be resolved.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// boldFontName reports whether a PDF font name signals a bold face.
// PDF fonts carry weight in the name ("TimesNewRoman,Bold",
// "Arial-BoldMT", "FKGXLB+NimbusSans-Bold"), not in a flag the text
// extractor exposes.
func boldFontName(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range boldMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// pageSize resolves a page's MediaBox, walking up to inherited parent
// entries when the page node does not carry one directly.
func pageSize(page pdflib.Page) (width, height float64) {
	box := page.V.Key("MediaBox")
	if box.IsNull() {
		parent := page.V.Key("Parent")
		for !parent.IsNull() {
			box = parent.Key("MediaBox")
			if !box.IsNull() {
				break
			}
			parent = parent.Key("Parent")
		}
	}
	if box.IsNull() || box.Len() < 4 {
		return defaultPageWidth, defaultPageHeight
	}

	x0 := box.Index(0).Float64()
	y0 := box.Index(1).Float64()
	x1 := box.Index(2).Float64()
	y1 := box.Index(3).Float64()

	width = x1 - x0
	height = y1 - y0
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}
