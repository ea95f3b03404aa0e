// Package outliner provides a fluent API for inferring a document's title
// and heading outline from the visual layout of a PDF file.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.Open("paper.pdf").
//	    Profile(structure.ProfileAcademic).
//	    MaxPages(20).
//	    Outline()
//
// For advanced use cases, the lower-level reader and structure packages
// are also available.
package outliner

import (
	"github.com/tsawler/outliner/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The file itself is not touched until a terminal operation like Outline()
// runs, and it is closed before the terminal operation returns.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-opened reader.Document.
// This is useful when you need more control over the document lifecycle.
// Note: The caller is responsible for closing the document.
//
// Example:
//
//	doc, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	result, err := outliner.FromDocument(doc).Outline()
func FromDocument(d *reader.Document) *Extractor {
	return &Extractor{
		doc:       d,
		ownsDoc:   false,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
