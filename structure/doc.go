// Package structure infers a document's logical structure (a title and
// an ordered list of headings with page anchors) from the raw visual
// layout of its pages.
//
// No structural metadata (bookmarks, tagged PDF) is consulted: structure
// is reconstructed purely from typographic and positional signals plus
// light textual pattern matching.
//
// # Pipeline
//
// The [Engine] orchestrates the full pipeline for one document:
//
//	engine := structure.NewEngine()
//	result := engine.Process(src)
//
// Internally, each page flows through the stages:
//
//   - [BuildLines] - groups positioned fragments into visual lines
//   - [EstimateThresholds] - per-page adaptive font-size bands
//   - [Classifier] - assigns an optional heading level per line,
//     combining pattern hints, font bands, and boldness
//   - [Filter] - suppresses content-shaped false positives
//   - [Assembler] - deduplicates, merges page-break repeats, and orders
//     the final outline
//
// [ResolveTitle] runs independently over the first page and the document
// metadata; its result feeds back into classification so the title is
// never re-emitted as a heading.
//
// # Configuration
//
// Every threshold, pattern table, and exclusion vocabulary lives in an
// immutable [Config] passed at construction. [DefaultConfig] is the
// generic tuning; [AcademicConfig] and [FormConfig] are the named
// profile variants. Profile selection is always caller-supplied, never
// derived from filenames.
package structure
