package model

// TextFragment represents a positioned run of visible text on a page,
// as produced by the PDF reader
type TextFragment struct {
	// Text is the fragment content, whitespace preserved as extracted
	Text string

	// FontSize is the rendered font size in points
	FontSize float64

	// Bold indicates the fragment's font carries a bold weight marker
	Bold bool

	// BBox is the fragment's bounding box in page coordinates
	BBox BBox

	// Page is the 1-based page number the fragment appears on
	Page int
}

// Line is a fragment aggregate: all fragments sharing one visual line,
// concatenated left to right
type Line struct {
	// Text is the assembled line content with whitespace collapsed
	Text string

	// Fragments are the source fragments, sorted left to right
	Fragments []TextFragment

	// MaxFontSize is the largest font size among the fragments
	MaxFontSize float64

	// Bold is true if any fragment on the line is bold
	Bold bool

	// BBox is the union of the fragment bounding boxes
	BBox BBox

	// Page is the 1-based page number the line appears on
	Page int
}
