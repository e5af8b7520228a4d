package canvas

import "testing"

func writeRow(c *Canvas, y int, graphemes []string, widths []int) {
	x := 0
	for i, g := range graphemes {
		c.PutGrapheme(y, x, g, widths[i], Style{})
		x += widths[i]
	}
}

func TestDiffMinimalityWideToNarrow(t *testing.T) {
	old := New(6, 1)
	writeRow(old, 0, []string{"a", "あ", "b", "b", "b"}, []int{1, 2, 1, 1, 1})

	next := New(6, 1)
	writeRow(next, 0, []string{"a", "a", "a", "b", "b", "b"}, []int{1, 1, 1, 1, 1, 1})

	ops := next.Diff(old)

	var moves []DrawOp
	var graphemes []string
	for _, op := range ops {
		switch op.Kind {
		case OpMoveTo:
			moves = append(moves, op)
		case OpGrapheme:
			graphemes = append(graphemes, op.Chars)
		}
	}
	if len(moves) != 1 || moves[0].Y != 0 || moves[0].X != 1 {
		t.Fatalf("expected exactly one MoveTo{0,1}, got %v", moves)
	}
	if len(graphemes) != 2 || graphemes[0] != "a" || graphemes[1] != "a" {
		t.Fatalf("expected two \"a\" graphemes, got %v", graphemes)
	}
}

func TestDiffNoOpsWhenIdentical(t *testing.T) {
	a := New(4, 2)
	writeRow(a, 0, []string{"x", "y"}, []int{1, 1})
	b := New(4, 2)
	writeRow(b, 0, []string{"x", "y"}, []int{1, 1})

	if ops := a.Diff(b); len(ops) != 0 {
		t.Fatalf("expected no ops for identical canvases, got %v", ops)
	}
}

func TestDiffNarrowToWideInvalidatesFiller(t *testing.T) {
	old := New(4, 1)
	writeRow(old, 0, []string{"a", "b", "c", "d"}, []int{1, 1, 1, 1})

	next := New(4, 1)
	next.PutGrapheme(0, 0, "あ", 2, Style{})
	next.PutGrapheme(0, 2, "c", 1, Style{})
	next.PutGrapheme(0, 3, "d", 1, Style{})

	ops := next.Diff(old)
	var graphemes []string
	for _, op := range ops {
		if op.Kind == OpGrapheme {
			graphemes = append(graphemes, op.Chars)
		}
	}
	if len(graphemes) != 1 || graphemes[0] != "あ" {
		t.Fatalf("expected exactly one wide grapheme emitted, got %v", graphemes)
	}
}

func TestDiffStyleTransitionsOnlyOnChange(t *testing.T) {
	old := New(3, 1)
	next := New(3, 1)
	bold := Style{Bold: true}
	next.PutGrapheme(0, 0, "a", 1, bold)
	next.PutGrapheme(0, 1, "b", 1, bold)
	next.PutGrapheme(0, 2, "c", 1, Style{})

	ops := next.Diff(old)
	boldOps := 0
	noBoldOps := 0
	for _, op := range ops {
		if op.Kind == OpBold {
			boldOps++
		}
		if op.Kind == OpNoBold {
			noBoldOps++
		}
	}
	if boldOps != 1 || noBoldOps != 1 {
		t.Fatalf("expected exactly one OpBold and one OpNoBold transition, got bold=%d noBold=%d", boldOps, noBoldOps)
	}
}

func TestCopyFromClipsOutOfBounds(t *testing.T) {
	dst := New(2, 2)
	src := New(3, 3)
	writeRow(src, 0, []string{"x", "y", "z"}, []int{1, 1, 1})
	dst.CopyFrom(0, 0, src) // should not panic despite src being larger
	if dst.Get(0, 0).Grapheme != "x" {
		t.Fatalf("expected top-left cell copied")
	}
}
