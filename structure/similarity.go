package structure

import "strings"

// Similarity scores how alike two strings are, in [0, 1]: an exact
// normalized match scores 1.0, substring containment either direction
// scores 0.9, and anything else scores the Jaccard similarity of the
// whitespace-tokenized word sets. Empty input scores 0.
//
// Used for title/heading collision suppression and for detecting a
// heading repeated across adjacent pages.
func Similarity(a, b string) float64 {
	x := strings.ToLower(strings.TrimSpace(a))
	y := strings.ToLower(strings.TrimSpace(b))
	if x == "" || y == "" {
		return 0
	}

	if x == y {
		return 1.0
	}

	if strings.Contains(x, y) || strings.Contains(y, x) {
		return 0.9
	}

	wx := wordSet(x)
	wy := wordSet(y)
	if len(wx) == 0 || len(wy) == 0 {
		return 0
	}

	intersection := 0
	for w := range wx {
		if wy[w] {
			intersection++
		}
	}
	union := len(wx) + len(wy) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
