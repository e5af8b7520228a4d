package text

import (
	"math"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

// NoWrap disables soft-wrap when passed as a reflow iterator's screen width;
// rows grow unbounded (the Go analog of the original's usize::MAX sentinel).
const NoWrap = math.MaxInt

// ReflowCell is one screen cell produced by reflowing a buffer line.
type ReflowCell struct {
	Printable    string
	DisplayWidth int
	ScreenRow    int
	ScreenCol    int
	BufferPos    position.Position
}

// ReflowLine maps line y's graphemes onto screen cells of width screenWidth,
// expanding tabs to tabWidth-aligned stops and starting a new row whenever a
// grapheme would not fit in the remaining row width. No grapheme is split
// across rows. Both synthetic cells of an expanded tab carry the tab
// grapheme's own buffer position.
func ReflowLine(r rope.Rope, y int, screenWidth, tabWidth int) []ReflowCell {
	clusters := LineGraphemes(r, y)
	var cells []ReflowCell
	col, row := 0, 0

	advanceRow := func(w int) {
		if screenWidth != NoWrap && col+w > screenWidth {
			row++
			col = 0
		}
	}

	for x, g := range clusters {
		switch g {
		case "\r":
			continue
		case "\t":
			spaces := tabWidth - (col % tabWidth)
			if spaces == 0 {
				spaces = tabWidth
			}
			for i := 0; i < spaces; i++ {
				advanceRow(1)
				cells = append(cells, ReflowCell{
					Printable:    " ",
					DisplayWidth: 1,
					ScreenRow:    row,
					ScreenCol:    col,
					BufferPos:    position.Position{Y: y, X: x},
				})
				col++
			}
			continue
		}
		w := graphemeWidth(g)
		advanceRow(w)
		cells = append(cells, ReflowCell{
			Printable:    g,
			DisplayWidth: w,
			ScreenRow:    row,
			ScreenCol:    col,
			BufferPos:    position.Position{Y: y, X: x},
		})
		col += w
	}
	return cells
}

// ReflowRowCount returns the number of screen rows line y occupies after
// reflow; always at least 1, even for an empty line.
func ReflowRowCount(r rope.Rope, y int, screenWidth, tabWidth int) int {
	cells := ReflowLine(r, y, screenWidth, tabWidth)
	if len(cells) == 0 {
		return 1
	}
	return cells[len(cells)-1].ScreenRow + 1
}

// Paragraph is a maximal run of lines delimited by hard newlines; paragraph
// boundaries in this editor coincide with buffer lines split on "\n", so a
// Paragraph spans exactly one buffer line. It exists as the scroll-anchor
// unit named by the spec.
type Paragraph struct {
	Index     int
	StartLine int
	EndLine   int // exclusive
}

// Paragraphs partitions the buffer's lines into paragraphs.
func Paragraphs(r rope.Rope) []Paragraph {
	n := r.NumLines()
	out := make([]Paragraph, n)
	for i := 0; i < n; i++ {
		out[i] = Paragraph{Index: i, StartLine: i, EndLine: i + 1}
	}
	return out
}
