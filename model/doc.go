// Package model provides the value types shared across the outliner:
// positioned text fragments, visual lines, headings, and the final
// document result.
//
// # Input Side
//
// The [TextFragment] type is the normalized representation of a run of
// visible text as produced by the PDF reader: its content, font size,
// boldness, bounding box, and owning page. Fragments that share a visual
// line are aggregated into [Line] values.
//
// # Output Side
//
// The [DocumentResult] type is the entire externally visible schema:
// a title plus an ordered list of [Heading] entries, each carrying a
// level (H1 coarsest through H3, optionally H4), the heading text, and
// a 1-based page anchor.
//
// # Geometry
//
// [BBox] follows the PDF coordinate convention: the origin is the lower
// left corner of the page and Y increases upward, so the top of a page
// has the largest Y value.
//
// All types are plain values. They are produced and consumed within a
// single document-processing run and are never shared across documents.
package model
