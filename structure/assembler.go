package structure

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// Assembler turns the filtered candidate list into the final outline:
// it deduplicates, merges headings repeated across a page break, orders
// the result, and strips the layout bookkeeping.
type Assembler struct {
	cfg Config
}

// NewAssembler creates an assembler with the generic configuration
func NewAssembler() *Assembler {
	return &Assembler{cfg: DefaultConfig()}
}

// NewAssemblerWithConfig creates an assembler with a custom configuration
func NewAssemblerWithConfig(cfg Config) *Assembler {
	return &Assembler{cfg: cfg}
}

type headingKey struct {
	text string
	page int
}

// Assemble produces the ordered outline from candidates collected in
// page order. An empty candidate list yields an empty outline, never an
// error.
func (a *Assembler) Assemble(candidates []Candidate) model.Outline {
	outline := model.Outline{}
	if len(candidates) == 0 {
		return outline
	}

	cands := make([]Candidate, len(candidates))
	copy(cands, candidates)

	// The auxiliary band is clamped unless the profile emits H4.
	if !a.cfg.EmitH4 {
		for i := range cands {
			if cands[i].Level == model.LevelH4 {
				cands[i].Level = model.LevelH3
			}
		}
	}

	seen := make(map[headingKey]bool)
	var kept []Candidate
	for _, c := range cands {
		key := headingKey{text: c.Text, page: c.Page}
		if seen[key] {
			continue
		}

		// A heading split or repeated across a page break shows up as
		// the same text on an adjacent page.
		if len(kept) > 0 {
			last := kept[len(kept)-1]
			if last.Text == c.Text && absInt(last.Page-c.Page) <= 1 {
				continue
			}
		}

		seen[key] = true
		kept = append(kept, c)
	}

	// Page order first; level is only a tie-break within a page, not a
	// promise of reading order.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Page != kept[j].Page {
			return kept[i].Page < kept[j].Page
		}
		return kept[i].Level < kept[j].Level
	})

	for _, c := range kept {
		outline = append(outline, model.Heading{
			Level: c.Level,
			Text:  c.Text,
			Page:  c.Page,
		})
	}

	return outline
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
