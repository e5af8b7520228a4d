package text

import (
	"testing"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

func TestReflowSoftWrap(t *testing.T) {
	r := rope.FromText("ABC123XYZ")
	cells := ReflowLine(r, 0, 3, 4)
	if len(cells) != 9 {
		t.Fatalf("got %d cells", len(cells))
	}
	wantRows := []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
	for i, c := range cells {
		if c.ScreenRow != wantRows[i] {
			t.Fatalf("cell %d row = %d, want %d", i, c.ScreenRow, wantRows[i])
		}
	}
	if cells[3].BufferPos != (position.Position{Y: 0, X: 3}) {
		t.Fatalf("cell 3 pos = %v", cells[3].BufferPos)
	}
}

func TestReflowTabExpansion(t *testing.T) {
	r := rope.FromText("AB\tC")
	cells := ReflowLine(r, 0, NoWrap, 4)
	wantPrintable := []string{"A", "B", " ", " ", "C"}
	wantPos := []position.Position{{0, 0}, {0, 1}, {0, 2}, {0, 2}, {0, 3}}
	if len(cells) != len(wantPrintable) {
		t.Fatalf("got %d cells: %+v", len(cells), cells)
	}
	for i := range wantPrintable {
		if cells[i].Printable != wantPrintable[i] {
			t.Fatalf("cell %d printable = %q, want %q", i, cells[i].Printable, wantPrintable[i])
		}
		if cells[i].BufferPos != wantPos[i] {
			t.Fatalf("cell %d pos = %v, want %v", i, cells[i].BufferPos, wantPos[i])
		}
	}
}

func TestReflowNoWrapUnbounded(t *testing.T) {
	r := rope.FromText("aaaaaaaaaaaaaaaaaaaa")
	cells := ReflowLine(r, 0, NoWrap, 4)
	for _, c := range cells {
		if c.ScreenRow != 0 {
			t.Fatalf("expected single row under NoWrap, got row %d", c.ScreenRow)
		}
	}
}
