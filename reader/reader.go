package reader

import (
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/structure"
)

// OpenError reports a document that cannot be opened or read at all:
// a corrupt container, an unsupported encoding, or an unreadable file.
// It is the only error the reader surfaces for a document.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Document is an open PDF exposing page content and metadata to the
// structure engine. It must be closed when done.
type Document struct {
	path      string
	file      *os.File
	reader    *pdflib.Reader
	meta      model.Metadata
	pageCount int
}

// Document satisfies the engine's page source contract.
var _ structure.PageSource = (*Document)(nil)

// Open opens and validates a PDF document. The pdfcpu validation pass
// is the fatal-to-document gate: anything it rejects is returned as an
// *OpenError and the document contributes nothing. Once Open succeeds,
// per-page problems are absorbed by Page.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	conf := pdfcpumodel.NewDefaultConfiguration()
	_, err = api.ReadValidateAndOptimize(f, conf)
	f.Close()
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("validate: %w", err)}
	}

	file, r, err := pdflib.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("read layout: %w", err)}
	}

	d := &Document{
		path:      path,
		file:      file,
		reader:    r,
		pageCount: r.NumPage(),
	}
	d.meta = d.readMetadata()

	return d, nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document
func (d *Document) PageCount() int {
	return d.pageCount
}

// Metadata returns the document information dictionary fields
func (d *Document) Metadata() model.Metadata {
	return d.meta
}

// Page extracts one page's dimensions and positioned text fragments.
// Pages are 1-based. Malformed page data is reported as an error so the
// engine can skip the page; it never aborts the document.
func (d *Document) Page(n int) (pc structure.PageContent, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: layout data panic: %v", n, r)
		}
	}()

	if n < 1 || n > d.pageCount {
		return pc, fmt.Errorf("page %d out of range (1-%d)", n, d.pageCount)
	}

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return pc, fmt.Errorf("page %d: missing page object", n)
	}

	pc.Width, pc.Height = pageSize(page)

	content := page.Content()
	pc.Fragments = make([]model.TextFragment, 0, len(content.Text))
	for _, t := range content.Text {
		text := norm.NFKC.String(t.S)
		if strings.TrimSpace(text) == "" {
			continue
		}
		pc.Fragments = append(pc.Fragments, model.TextFragment{
			Text:     text,
			FontSize: t.FontSize,
			Bold:     boldFontName(t.Font),
			BBox:     model.NewBBox(t.X, t.Y, t.W, t.FontSize),
			Page:     n,
		})
	}

	return pc, nil
}

// readMetadata pulls the information dictionary from the trailer.
// Malformed dictionaries yield whatever was read before the failure.
func (d *Document) readMetadata() (meta model.Metadata) {
	meta.PageCount = d.pageCount

	defer func() {
		_ = recover()
	}()

	info := d.reader.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}

	meta.Title = strings.TrimSpace(norm.NFKC.String(info.Key("Title").Text()))
	meta.Author = strings.TrimSpace(info.Key("Author").Text())
	meta.Creator = strings.TrimSpace(info.Key("Creator").Text())
	meta.Producer = strings.TrimSpace(info.Key("Producer").Text())

	return meta
}
