package structure

import (
	"math"

	"github.com/tsawler/outliner/model"
)

// Multipliers applied to a page's mean font size when deriving its
// adaptive bands. Ordered so that H1 >= H2 >= H3 holds whenever the
// configured floors are ordered.
const (
	h1Multiplier = 1.3
	h2Multiplier = 1.15
	h3Multiplier = 1.05
)

// Thresholds holds one page's adaptive font-size bands. A line whose
// size reaches H1 is top-band, H2 mid-band, H3 low-band.
type Thresholds struct {
	H1 float64
	H2 float64
	H3 float64
}

// EstimateThresholds computes the adaptive bands for one page from the
// distribution of its fragment font sizes. A page set entirely in small
// type still produces a meaningful top band, while a page dominated by
// large display type does not misclassify body text as a heading. A
// page with no sized fragments falls back to the configured floors.
func EstimateThresholds(fragments []model.TextFragment, cfg Config) Thresholds {
	var sum float64
	var n int
	for _, f := range fragments {
		if f.FontSize > 0 {
			sum += f.FontSize
			n++
		}
	}

	if n == 0 {
		return Thresholds{H1: cfg.H1Floor, H2: cfg.H2Floor, H3: cfg.H3Floor}
	}

	avg := sum / float64(n)
	return Thresholds{
		H1: math.Max(cfg.H1Floor, avg*h1Multiplier),
		H2: math.Max(cfg.H2Floor, avg*h2Multiplier),
		H3: math.Max(cfg.H3Floor, avg*h3Multiplier),
	}
}
