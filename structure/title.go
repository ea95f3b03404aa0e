package structure

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// defaultPageHeight is the US Letter fallback when a page reports no
// usable height.
const defaultPageHeight = 792.0

// untitledFallback is returned when neither metadata nor the first page
// yields a usable title.
const untitledFallback = "Untitled Document"

// filenameMarkers flag a metadata title as export-tool pollution rather
// than a real title: file extensions, editor temp-file prefixes, and
// generic placeholders.
var filenameMarkers = []string{
	".doc", ".docx", ".pdf", ".txt", ".rtf",
	".cdr", ".psd", ".ai", ".eps",
	"microsoft word -",
	"untitled", "document", "new document",
}

// ResolveTitle chooses the document title from the embedded metadata
// title and the most prominent text on the first page. Metadata is
// authoritative but frequently polluted by export tooling; visual
// prominence is the next-best signal but is penalized when it is
// clearly not prose.
//
// Pure function: the same inputs always produce the same string.
func ResolveTitle(metaTitle string, firstPage []model.Line, pageHeight float64, cfg Config) string {
	meta := normalizeSpace(metaTitle)
	content := contentTitle(firstPage, pageHeight, cfg)

	if meta != "" && content != "" {
		if looksLikeFilename(meta) {
			return content
		}
		if float64(utf8.RuneCountInString(content)) > float64(utf8.RuneCountInString(meta))*1.5 &&
			looksLikeProperTitle(content) && !looksLikeProperTitle(meta) {
			return content
		}
		return meta
	}

	if meta != "" && !looksLikeFilename(meta) {
		return meta
	}
	if content != "" {
		return content
	}
	if meta != "" {
		// Last resort, even if it is filename-shaped.
		return meta
	}
	return untitledFallback
}

// titleCandidate is a first-page line eligible to contribute to the
// content title.
type titleCandidate struct {
	text string
	size float64
	top  float64 // distance from the top edge of the page
}

// contentTitle builds the visual title candidate from the first page:
// the largest line in the top band, merged with nearby lines of similar
// size into a multi-line title.
func contentTitle(lines []model.Line, pageHeight float64, cfg Config) string {
	if pageHeight <= 0 {
		pageHeight = defaultPageHeight
	}

	var candidates []titleCandidate
	for _, ln := range lines {
		top := pageHeight - ln.BBox.Top()
		if top > pageHeight*cfg.TopBandRatio {
			continue
		}
		if ln.MaxFontSize < cfg.TitleFloor {
			continue
		}
		text := normalizeSpace(ln.Text)
		if text == "" {
			continue
		}
		candidates = append(candidates, titleCandidate{text: text, size: ln.MaxFontSize, top: top})
	}
	if len(candidates) == 0 {
		return ""
	}

	// Largest first, then topmost.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].size != candidates[j].size {
			return candidates[i].size > candidates[j].size
		}
		return candidates[i].top < candidates[j].top
	})

	lead := candidates[0]
	var parts []string
	for _, c := range candidates {
		if c.size >= lead.size*cfg.TitleSizeRatio && c.top <= lead.top+cfg.TitleProximity {
			parts = append(parts, c.text)
		}
	}

	return normalizeSpace(strings.Join(parts, "  "))
}

// looksLikeFilename reports whether a metadata title is filename-shaped
// rather than a real document title.
func looksLikeFilename(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range filenameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	// "somename.ext" with an extension-shaped final segment.
	if strings.Contains(text, ".") {
		segments := strings.Split(text, ".")
		if len(segments[len(segments)-1]) <= 4 {
			return true
		}
	}

	return false
}

// looksLikeProperTitle reports whether text is title-shaped prose:
// reasonable length, several words, uppercase start, and title or
// sentence case.
func looksLikeProperTitle(text string) bool {
	text = strings.TrimSpace(text)
	length := utf8.RuneCountInString(text)
	if length < 10 || length > 100 {
		return false
	}

	words := strings.Fields(text)
	if len(words) < 3 || len(words) > 15 {
		return false
	}

	first := []rune(text)[0]
	if !unicode.IsUpper(first) {
		return false
	}

	capitalized := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			capitalized++
		}
	}

	// Title case, or sentence case with a single leading capital.
	return capitalized*2 >= len(words) || capitalized == 1
}
