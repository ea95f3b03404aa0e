package structure

import "github.com/tsawler/outliner/model"

// PageContent is one page's worth of input: its dimensions and the
// positioned text fragments the layout reader extracted from it.
type PageContent struct {
	Width     float64
	Height    float64
	Fragments []model.TextFragment
}

// PageSource supplies page content and document metadata to the engine.
// Pages are requested with 1-based numbers, strictly in order.
type PageSource interface {
	PageCount() int
	Page(n int) (PageContent, error)
	Metadata() model.Metadata
}

// Engine runs the full inference pipeline over one document: title
// resolution, per-page threshold estimation, classification, filtering,
// and outline assembly. An Engine holds no per-document state and may
// be reused across documents.
type Engine struct {
	cfg        Config
	classifier *Classifier
	filter     *Filter
	assembler  *Assembler
}

// NewEngine creates an engine with the generic configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with a custom configuration
func NewEngineWithConfig(cfg Config) *Engine {
	return &Engine{
		cfg:        cfg,
		classifier: NewClassifierWithConfig(cfg),
		filter:     NewFilterWithConfig(cfg),
		assembler:  NewAssemblerWithConfig(cfg),
	}
}

// NewEngineForProfile creates an engine tuned for the named profile
func NewEngineForProfile(p Profile) *Engine {
	return NewEngineWithConfig(ConfigForProfile(p))
}

// Process infers the title and outline for one document. Failure on a
// single page contributes zero headings and processing continues;
// Process itself never fails.
func (e *Engine) Process(src PageSource) model.DocumentResult {
	total := src.PageCount()
	if e.cfg.MaxPages > 0 && total > e.cfg.MaxPages {
		total = e.cfg.MaxPages
	}

	title := e.resolveTitle(src)

	var candidates []Candidate
	for n := 1; n <= total; n++ {
		candidates = append(candidates, e.processPage(src, n, title)...)
	}

	return model.DocumentResult{
		Title:   title,
		Outline: e.assembler.Assemble(candidates),
	}
}

// resolveTitle runs the title resolver over the document metadata and
// the first page. A missing or unreadable first page leaves only the
// metadata to decide from.
func (e *Engine) resolveTitle(src PageSource) string {
	lines, height := e.firstPageLayout(src)
	return ResolveTitle(src.Metadata().Title, lines, height, e.cfg)
}

// firstPageLayout fetches page 1 for title resolution. Malformed span
// data is absorbed the same way processPage absorbs it.
func (e *Engine) firstPageLayout(src PageSource) (lines []model.Line, height float64) {
	defer func() {
		if r := recover(); r != nil {
			lines, height = nil, 0
		}
	}()

	if src.PageCount() > 0 {
		if pc, err := src.Page(1); err == nil {
			lines = BuildLines(pc.Fragments)
			height = pc.Height
		}
	}

	return lines, height
}

// processPage classifies and filters one page's lines. Malformed span
// data is absorbed: the page is skipped and contributes nothing.
func (e *Engine) processPage(src PageSource, n int, title string) (cands []Candidate) {
	defer func() {
		if r := recover(); r != nil {
			cands = nil
		}
	}()

	pc, err := src.Page(n)
	if err != nil {
		return nil
	}

	thresholds := EstimateThresholds(pc.Fragments, e.cfg)
	for _, line := range BuildLines(pc.Fragments) {
		candidate, ok := e.classifier.Classify(line, thresholds, pc.Height, title)
		if !ok {
			continue
		}
		if !e.filter.Keep(candidate) {
			continue
		}
		cands = append(cands, candidate)
	}

	return cands
}
