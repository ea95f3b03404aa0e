// Package reader opens PDF documents and exposes the layout view the
// structure engine consumes: per page, the page dimensions and the
// positioned text fragments with font size and weight, plus the
// document information dictionary.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	doc, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
// Opening is gated by a full pdfcpu read-and-validate pass; a document
// that fails it is reported as a single [OpenError] and nothing else.
// Per-page extraction problems are absorbed: a bad page simply yields
// no fragments and never surfaces an error to the document level.
//
// The package never interprets the text it extracts; all structure
// inference lives in the structure package.
package reader
