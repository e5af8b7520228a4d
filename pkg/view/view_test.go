package view

import (
	"testing"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

func TestLayoutSoftWrap(t *testing.T) {
	r := rope.FromText("ABC123XYZ")
	v := New(3, 4)
	v.Layout(r)

	rows := v.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := [][]string{{"A", "B", "C"}, {"1", "2", "3"}, {"X", "Y", "Z"}}
	for i, row := range rows {
		if row.LineNo != 0 {
			t.Fatalf("row %d: expected lineno 0, got %d", i, row.LineNo)
		}
		if len(row.Graphemes) != 3 {
			t.Fatalf("row %d: expected width 3, got %d (%v)", i, len(row.Graphemes), row.Graphemes)
		}
		for j, g := range row.Graphemes {
			if g != want[i][j] {
				t.Fatalf("row %d col %d: want %q got %q", i, j, want[i][j], g)
			}
		}
	}
	if rows[0].Positions[0] != (position.Position{Y: 0, X: 0}) {
		t.Fatalf("row0 pos0 = %v", rows[0].Positions[0])
	}
	if rows[1].Positions[0] != (position.Position{Y: 0, X: 3}) {
		t.Fatalf("row1 pos0 = %v", rows[1].Positions[0])
	}
	if rows[2].Positions[0] != (position.Position{Y: 0, X: 6}) {
		t.Fatalf("row2 pos0 = %v", rows[2].Positions[0])
	}
}

func TestLayoutTabExpansion(t *testing.T) {
	r := rope.FromText("AB\tC")
	v := New(80, 4)
	v.Layout(r)

	rows := v.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	wantGraphemes := []string{"A", "B", " ", " ", "C"}
	wantPositions := []position.Position{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 0, X: 2}, {Y: 0, X: 2}, {Y: 0, X: 3}}
	row := rows[0]
	if len(row.Graphemes) != len(wantGraphemes) {
		t.Fatalf("got %v", row.Graphemes)
	}
	for i := range wantGraphemes {
		if row.Graphemes[i] != wantGraphemes[i] {
			t.Fatalf("grapheme %d: want %q got %q", i, wantGraphemes[i], row.Graphemes[i])
		}
		if row.Positions[i] != wantPositions[i] {
			t.Fatalf("position %d: want %v got %v", i, wantPositions[i], row.Positions[i])
		}
	}
}

func TestLayoutTotality(t *testing.T) {
	r := rope.FromText("hello\nworld\n\nx")
	v := New(3, 4)
	v.Layout(r)

	if len(v.Rows()) < r.NumLines() {
		t.Fatalf("expected at least one row per buffer line")
	}
	var flattened []string
	for _, row := range v.Rows() {
		flattened = append(flattened, row.Graphemes...)
	}
	var want []string
	for y := 0; y < r.NumLines(); y++ {
		want = append(want, lineGraphemesNoNL(r, y)...)
	}
	if len(flattened) != len(want) {
		t.Fatalf("flattened length mismatch: got %d want %d", len(flattened), len(want))
	}
}

func lineGraphemesNoNL(r rope.Rope, y int) []string {
	cells := []rune(r.Line(y))
	var out []string
	for _, c := range cells {
		if c == '\n' || c == '\r' {
			continue
		}
		out = append(out, string(c))
	}
	return out
}

func TestHighlightMergesStyles(t *testing.T) {
	r := rope.FromText("hello")
	v := New(80, 4)
	v.Layout(r)
	v.Highlight(position.NewRange(position.Position{Y: 0, X: 1}, position.Position{Y: 0, X: 3}), Style{Bold: true})

	row := v.Rows()[0]
	if !row.Styles[1].Bold || !row.Styles[2].Bold {
		t.Fatalf("expected bold style applied to columns 1,2")
	}
	if row.Styles[0].Bold || row.Styles[3].Bold {
		t.Fatalf("expected bold style not applied outside range")
	}
}

func TestScrollClampsToMainCursor(t *testing.T) {
	text := ""
	for i := 0; i < 20; i++ {
		text += "line\n"
	}
	r := rope.FromText(text)
	v := New(80, 4)
	v.Layout(r)
	v.ClampScroll(position.Position{Y: 15, X: 0}, 5)
	if v.ScrollRow() < 11 {
		t.Fatalf("expected scroll to bring row 15 into view, got scrollRow=%d", v.ScrollRow())
	}
}
