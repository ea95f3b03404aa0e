package structure

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "Introduction", "Introduction", 1.0},
		{"case and space insensitive", "  INTRODUCTION ", "introduction", 1.0},
		{"containment", "Annual Report", "Annual Report 2024", 0.9},
		{"containment reversed", "Annual Report 2024", "Annual Report", 0.9},
		{"empty left", "", "Introduction", 0},
		{"empty right", "Introduction", "", 0},
		{"both empty", "", "", 0},
		{"disjoint words", "Methods", "Results Discussion", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityJaccard(t *testing.T) {
	// "deep learning methods" vs "machine learning methods":
	// intersection {learning, methods} = 2, union 4.
	got := Similarity("deep learning methods", "machine learning methods")
	if !closeTo(got, 0.5) {
		t.Errorf("Similarity = %v, want 0.5", got)
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"a b c", "c d e"},
		{"one", "two three"},
		{"Heading", "heading repeated heading"},
		{"x", "x"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"deep learning methods", "machine learning methods"},
		{"Annual Report", "Annual Report 2024"},
		{"Methods", "Results"},
	}
	for _, p := range pairs {
		if Similarity(p[0], p[1]) != Similarity(p[1], p[0]) {
			t.Errorf("Similarity not symmetric for (%q, %q)", p[0], p[1])
		}
	}
}
