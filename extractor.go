package outliner

import (
	"fmt"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
	"github.com/tsawler/outliner/structure"
)

// Extractor provides a fluent interface for inferring document outlines.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Open document
	doc *reader.Document

	// Lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool // true if the document has been opened

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// MaxPages caps how many pages the engine inspects. Documents longer than
// the cap are truncated, not rejected.
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		newExt.err = fmt.Errorf("max pages must be at least 1, got %d", n)
		return newExt
	}
	newExt.options.maxPages = n
	return newExt
}

// Profile selects a named heuristic profile. The default is
// structure.ProfileGeneric.
func (e *Extractor) Profile(p structure.Profile) *Extractor {
	newExt := e.clone()
	newExt.options.profile = p
	return newExt
}

// Config replaces the entire engine configuration. It overrides any
// earlier Profile call; a later MaxPages call still applies on top.
func (e *Extractor) Config(cfg structure.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = &cfg
	return newExt
}

// ensureDoc opens the document if not already open.
func (e *Extractor) ensureDoc() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	d, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	e.doc = d
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.docOpened = false
		e.ownsDoc = false
		return err
	}
	return nil
}

// Outline is the terminal operation: it opens the document if needed,
// runs the structure engine, and returns the inferred title and outline.
// Documents the reader rejects yield a *reader.OpenError; once a document
// opens, Outline always succeeds.
func (e *Extractor) Outline() (model.DocumentResult, error) {
	if e.err != nil {
		return model.DocumentResult{}, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return model.DocumentResult{}, err
	}
	if e.ownsDoc {
		defer e.Close()
	}

	engine := structure.NewEngineWithConfig(e.options.engineConfig())
	return engine.Process(e.doc), nil
}

// Title is a convenience terminal operation returning only the resolved
// document title.
func (e *Extractor) Title() (string, error) {
	result, err := e.Outline()
	if err != nil {
		return "", err
	}
	return result.Title, nil
}

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return 0, err
	}
	if e.ownsDoc {
		defer e.Close()
	}
	return e.doc.PageCount(), nil
}

// Metadata returns the document information dictionary fields.
func (e *Extractor) Metadata() (model.Metadata, error) {
	if e.err != nil {
		return model.Metadata{}, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return model.Metadata{}, err
	}
	if e.ownsDoc {
		defer e.Close()
	}
	return e.doc.Metadata(), nil
}
