package canvas

// OpKind enumerates the kinds of terminal mutation a DrawOp encodes.
type OpKind int

const (
	OpMoveTo OpKind = iota
	OpFgColor
	OpBgColor
	OpBold
	OpNoBold
	OpUnderline
	OpNoUnderline
	OpInvert
	OpNoInvert
	OpGrapheme
)

// DrawOp is a single terminal mutation produced by Diff: a cursor move, a
// style transition, or a grapheme write. Y/X are set only for OpMoveTo;
// Color is set only for OpFgColor/OpBgColor; Chars is set only for
// OpGrapheme.
type DrawOp struct {
	Kind  OpKind
	Y, X  int
	Color string
	Chars string
}

// runningStyle tracks the SGR state the diff has already emitted, so style
// ops are only emitted on change (mirrors the teacher's relativeRender
// tracking cursorRow/maxRendered across frames in pkg/tui/tui.go, but for
// SGR attributes instead of row position).
type runningStyle struct {
	style   Style
	atY, atX int
	haveCursor bool
}

// Diff scans c against other in row-major order and returns the minimal
// DrawOp stream that turns a terminal showing other into one showing c.
// c is the new ("back") canvas; other is the old ("front") canvas.
func (c *Canvas) Diff(other *Canvas) []DrawOp {
	var ops []DrawOp
	var rs runningStyle

	h, w := c.Height, c.Width
	if other != nil && (other.Height != h || other.Width != w) {
		// Dimension mismatch forces a full redraw; treat every cell as
		// changed by diffing against a fresh blank canvas of c's size.
		other = New(w, h)
	}

	y := 0
	for y < h {
		x := 0
		for x < w {
			cell := c.Get(y, x)
			var old Cell
			if other != nil {
				old = other.Get(y, x)
			}
			if cellsEqual(cell, old) {
				x++
				continue
			}
			if cell.Filler {
				// A filler cell differing on its own (without its owning
				// wide grapheme also differing) cannot happen from a
				// well-formed PutGrapheme call; skip defensively.
				x++
				continue
			}
			moveIfNeeded(&ops, &rs, y, x)
			emitStyle(&ops, &rs, cell.Style)
			ops = append(ops, DrawOp{Kind: OpGrapheme, Chars: cell.Grapheme})
			rs.atY, rs.atX = y, x+cell.DisplayWidth
			rs.haveCursor = true

			// Skip the new grapheme's own filler cells; if the old cell
			// was wider than the new one, its trailing filler is
			// deliberately NOT skipped, so the loop revisits it next and
			// finds it differs from the new (non-filler) cell there,
			// forcing its re-emission.
			width := cell.DisplayWidth
			if width < 1 {
				width = 1
			}
			x += width
		}
		y++
	}
	return ops
}

func cellsEqual(a, b Cell) bool {
	return a.Grapheme == b.Grapheme && a.DisplayWidth == b.DisplayWidth && a.Style == b.Style && a.Filler == b.Filler
}

func moveIfNeeded(ops *[]DrawOp, rs *runningStyle, y, x int) {
	if rs.haveCursor && rs.atY == y && rs.atX == x {
		return
	}
	*ops = append(*ops, DrawOp{Kind: OpMoveTo, Y: y, X: x})
	rs.atY, rs.atX = y, x
	rs.haveCursor = true
}

func emitStyle(ops *[]DrawOp, rs *runningStyle, s Style) {
	if s.FgColor != rs.style.FgColor {
		*ops = append(*ops, DrawOp{Kind: OpFgColor, Color: s.FgColor})
	}
	if s.BgColor != rs.style.BgColor {
		*ops = append(*ops, DrawOp{Kind: OpBgColor, Color: s.BgColor})
	}
	if s.Bold != rs.style.Bold {
		if s.Bold {
			*ops = append(*ops, DrawOp{Kind: OpBold})
		} else {
			*ops = append(*ops, DrawOp{Kind: OpNoBold})
		}
	}
	if s.Underline != rs.style.Underline {
		if s.Underline {
			*ops = append(*ops, DrawOp{Kind: OpUnderline})
		} else {
			*ops = append(*ops, DrawOp{Kind: OpNoUnderline})
		}
	}
	if s.Invert != rs.style.Invert {
		if s.Invert {
			*ops = append(*ops, DrawOp{Kind: OpInvert})
		} else {
			*ops = append(*ops, DrawOp{Kind: OpNoInvert})
		}
	}
	rs.style = s
}
