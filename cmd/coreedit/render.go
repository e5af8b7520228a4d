package main

import (
	"strconv"
	"strings"

	"github.com/arnebach/coreedit/internal/pool"
	"github.com/arnebach/coreedit/pkg/canvas"
	"github.com/arnebach/coreedit/pkg/compositor"
)

// renderOps translates a DrawOp stream (canvas.OpKind values, absolute
// row/col) plus the resolved cursor into the raw ANSI bytes written to the
// terminal. Unlike the teacher's pkg/tui/tui.go relativeRender/moveCursor,
// which moves the cursor relative to the last rendered row, every MoveTo
// here is written as an absolute CUP sequence, since every DrawOp already
// carries its own absolute position. The builder comes from internal/pool
// since this runs once per frame on every keystroke, the same
// allocation-pressure concern the teacher's render loop uses the pool for.
func renderOps(ops []canvas.DrawOp, cur compositor.CursorResult) string {
	b := pool.GetStringBuilder()
	defer pool.PutStringBuilder(b)
	b.WriteString("\x1b[?2026h") // begin synchronized update
	b.WriteString("\x1b[?25l")  // hide cursor while drawing

	for _, op := range ops {
		switch op.Kind {
		case canvas.OpMoveTo:
			b.WriteString("\x1b[" + strconv.Itoa(op.Y+1) + ";" + strconv.Itoa(op.X+1) + "H")
		case canvas.OpFgColor:
			writeColor(b, 38, op.Color)
		case canvas.OpBgColor:
			writeColor(b, 48, op.Color)
		case canvas.OpBold:
			b.WriteString("\x1b[1m")
		case canvas.OpNoBold:
			b.WriteString("\x1b[22m")
		case canvas.OpUnderline:
			b.WriteString("\x1b[4m")
		case canvas.OpNoUnderline:
			b.WriteString("\x1b[24m")
		case canvas.OpInvert:
			b.WriteString("\x1b[7m")
		case canvas.OpNoInvert:
			b.WriteString("\x1b[27m")
		case canvas.OpGrapheme:
			b.WriteString(op.Chars)
		}
	}

	if cur.Visible {
		b.WriteString("\x1b[" + strconv.Itoa(cur.Y+1) + ";" + strconv.Itoa(cur.X+1) + "H")
		b.WriteString("\x1b[?25h")
	}
	b.WriteString("\x1b[?2026l") // end synchronized update
	// Clone before the deferred Put resets b: Builder.String() aliases the
	// internal buffer, which the next pooled caller would otherwise
	// overwrite out from under this still-live return value.
	return strings.Clone(b.String())
}

// writeColor emits a truecolor SGR sequence for a "#rrggbb" color, a
// 256-palette SGR sequence for a bare decimal index, or resets to default
// for an empty/unrecognized value.
func writeColor(b *strings.Builder, base int, color string) {
	if color == "" {
		b.WriteString("\x1b[" + strconv.Itoa(base+1) + "m") // 39/49: default fg/bg
		return
	}
	if strings.HasPrefix(color, "#") && len(color) == 7 {
		r, g, bl := hexByte(color[1:3]), hexByte(color[3:5]), hexByte(color[5:7])
		b.WriteString("\x1b[" + strconv.Itoa(base) + ";2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(bl) + "m")
		return
	}
	if n, err := strconv.Atoi(color); err == nil {
		b.WriteString("\x1b[" + strconv.Itoa(base) + ";5;" + strconv.Itoa(n) + "m")
		return
	}
	b.WriteString("\x1b[" + strconv.Itoa(base+1) + "m")
}

func hexByte(s string) int {
	n, _ := strconv.ParseInt(s, 16, 32)
	return int(n)
}
