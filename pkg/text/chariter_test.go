package text

import (
	"testing"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

func TestCharIterNextCrossesNewline(t *testing.T) {
	r := rope.FromText("ab\ncd")
	it := NewCharIterAt(r, position.Position{Y: 0, X: 0})

	var got []rune
	var positions []position.Position
	for {
		pos, rn, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, rn)
		positions = append(positions, pos)
	}

	wantRunes := []rune{'a', 'b', '\n', 'c', 'd'}
	if string(got) != string(wantRunes) {
		t.Fatalf("got %q, want %q", string(got), string(wantRunes))
	}
	wantPositions := []position.Position{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 0, X: 2}, {Y: 1, X: 0}, {Y: 1, X: 1}}
	for i, p := range wantPositions {
		if positions[i] != p {
			t.Errorf("position %d: got %+v want %+v", i, positions[i], p)
		}
	}
}

func TestCharIterNextSkipsCR(t *testing.T) {
	r := rope.FromText("a\r\nb")
	it := NewCharIterAt(r, position.Position{Y: 0, X: 0})

	var got []rune
	for {
		_, rn, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, rn)
	}
	if string(got) != "a\nb" {
		t.Fatalf("got %q, want CR skipped: %q", string(got), "a\nb")
	}
}

func TestCharIterPrevWalksBackward(t *testing.T) {
	r := rope.FromText("ab\ncd")
	it := NewCharIterAt(r, position.Position{Y: 1, X: 1})

	pos, rn, ok := it.Prev()
	if !ok || rn != 'c' || pos != (position.Position{Y: 1, X: 0}) {
		t.Fatalf("expected 'c' at {1,0}, got %q %+v ok=%v", rn, pos, ok)
	}

	pos, rn, ok = it.Prev()
	if !ok || rn != '\n' || pos != (position.Position{Y: 0, X: 2}) {
		t.Fatalf("expected newline at {0,2}, got %q %+v ok=%v", rn, pos, ok)
	}
}

func TestCharIterAtEndOfBuffer(t *testing.T) {
	r := rope.FromText("ab")
	it := NewCharIterAt(r, position.Position{Y: 0, X: 2})
	if _, _, ok := it.Next(); ok {
		t.Fatalf("expected Next to report end of buffer")
	}
}

func TestCharIterAtStartOfBuffer(t *testing.T) {
	r := rope.FromText("ab")
	it := NewCharIterAt(r, position.Position{Y: 0, X: 0})
	if _, _, ok := it.Prev(); ok {
		t.Fatalf("expected Prev to report start of buffer")
	}
}
