// Package canvas implements the fixed-grid cell buffer described in §4.8:
// a (height x width) array of Cells, blitting between canvases, and the
// diff engine that turns two canvases into a minimal DrawOp stream. It
// generalizes the teacher's line-string RenderBuffer/relativeRender pair
// (pkg/tui/renderbuffer.go, pkg/tui/tui.go) from whole lines to addressable
// cells, which the spec's wide-grapheme and per-cell-style rules require.
package canvas

import "github.com/arnebach/coreedit/internal/log"

// Style is the SGR attribute state of a cell. Zero value is the default
// (no color, no attributes).
type Style struct {
	FgColor   string // "" means default foreground
	BgColor   string // "" means default background
	Bold      bool
	Underline bool
	Invert    bool
}

// Cell is one terminal cell. A wide grapheme (DisplayWidth==2) occupies its
// starting cell plus one filler cell to its right; the filler cell carries
// Filler=true and an empty Grapheme.
type Cell struct {
	Grapheme     string
	DisplayWidth int
	Style        Style
	Filler       bool
}

var blank = Cell{Grapheme: " ", DisplayWidth: 1}

// Canvas is a row-major grid of Cells.
type Canvas struct {
	Width, Height int
	cells         []Cell
}

// New returns a Canvas filled with blank cells.
func New(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, cells: make([]Cell, width*height)}
	c.Clear()
	return c
}

// Clear resets every cell to blank.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// Resize reallocates the grid to the new dimensions, discarding contents
// (the compositor always follows a resize with a full re-render).
func (c *Canvas) Resize(width, height int) {
	c.Width, c.Height = width, height
	c.cells = make([]Cell, width*height)
	c.Clear()
}

func (c *Canvas) idx(y, x int) int { return y*c.Width + x }

func (c *Canvas) inBounds(y, x int) bool {
	return y >= 0 && y < c.Height && x >= 0 && x < c.Width
}

// Get returns the cell at (y,x), or the blank cell if out of bounds.
func (c *Canvas) Get(y, x int) Cell {
	if !c.inBounds(y, x) {
		return blank
	}
	return c.cells[c.idx(y, x)]
}

// Set writes a single cell at (y,x); out-of-bounds writes are dropped and
// logged, per §7's OutOfBoundsDraw (never fatal).
func (c *Canvas) Set(y, x int, cell Cell) {
	if !c.inBounds(y, x) {
		log.Warn("canvas: dropped out-of-bounds write at (%d,%d) on %dx%d canvas", y, x, c.Width, c.Height)
		return
	}
	c.cells[c.idx(y, x)] = cell
}

// PutGrapheme writes a printable grapheme of the given display width at
// (y,x), filling (width-1) trailing cells with Filler cells so wide
// graphemes always own a contiguous run.
func (c *Canvas) PutGrapheme(y, x int, grapheme string, width int, style Style) {
	if width <= 0 {
		width = 1
	}
	c.Set(y, x, Cell{Grapheme: grapheme, DisplayWidth: width, Style: style})
	for i := 1; i < width; i++ {
		c.Set(y, x+i, Cell{Grapheme: "", DisplayWidth: 0, Style: style, Filler: true})
	}
}

// CopyFrom blits src onto c with its top-left corner at (y,x). Any portion
// of src that would land outside c is clipped cell-by-cell via Set
// (which logs and drops each out-of-bounds cell).
func (c *Canvas) CopyFrom(y, x int, src *Canvas) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.Height; sy++ {
		for sx := 0; sx < src.Width; sx++ {
			c.Set(y+sy, x+sx, src.Get(sy, sx))
		}
	}
}
