package model

import (
	"encoding/json"
	"testing"
)

func TestHeadingLevelString(t *testing.T) {
	tests := []struct {
		level    HeadingLevel
		expected string
	}{
		{LevelUnknown, "unknown"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
		{LevelH4, "H4"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("HeadingLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestHeadingLevelValid(t *testing.T) {
	if LevelUnknown.Valid() {
		t.Error("LevelUnknown should not be valid")
	}
	for l := LevelH1; l <= LevelH4; l++ {
		if !l.Valid() {
			t.Errorf("level %s should be valid", l)
		}
	}
	if HeadingLevel(99).Valid() {
		t.Error("out-of-range level should not be valid")
	}
}

func TestHeadingJSON(t *testing.T) {
	h := Heading{Level: LevelH2, Text: "Background", Page: 3}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"level":"H2","text":"Background","page":3}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var back Heading
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != h {
		t.Errorf("round trip = %+v, want %+v", back, h)
	}
}

func TestHeadingLevelUnmarshalUnknown(t *testing.T) {
	var l HeadingLevel
	if err := json.Unmarshal([]byte(`"H7"`), &l); err == nil {
		t.Error("expected error for unknown level string")
	}
}

func TestDocumentResultEmptyOutline(t *testing.T) {
	res := DocumentResult{Title: "Untitled Document", Outline: Outline{}}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"title":"Untitled Document","outline":[]}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 || b.Right() != 110 {
		t.Errorf("horizontal edges = %f, %f", b.Left(), b.Right())
	}
	if b.Bottom() != 20 || b.Top() != 70 {
		t.Errorf("vertical edges = %f, %f", b.Bottom(), b.Top())
	}
	if c := b.Center(); c.X != 60 || c.Y != 45 {
		t.Errorf("center = %+v", c)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(20, 20, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 30 || u.Height != 30 {
		t.Errorf("union = %+v", u)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if !(BBox{}).IsEmpty() {
		t.Error("zero box should be empty")
	}
	if NewBBox(0, 0, 5, 5).IsEmpty() {
		t.Error("non-zero box should not be empty")
	}
}
