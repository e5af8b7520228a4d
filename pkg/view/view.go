// Package view implements §4.7: the per-buffer layout cache that expands
// physical buffer lines into DisplayRows (soft-wrapped, tab-expanded,
// grapheme-addressed), tracks scroll position against the main cursor, and
// carries a highlight overlay keyed by buffer Position. Parallel layout
// across lines follows the teacher's errgroup.Group fan-out (see
// internal/memory/memory.go's level-loading goroutines for the pattern),
// joined before layout() returns per §5.
package view

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
	"github.com/arnebach/coreedit/pkg/text"
)

// Style is the display attributes attached to one rendered grapheme; it
// composes with canvas.Style (pkg/canvas owns the actual terminal SGR
// encoding) but stays independent of it so pkg/view has no dependency on
// the rendering backend.
type Style struct {
	FgColor   string
	BgColor   string
	Bold      bool
	Underline bool
	Invert    bool
}

// Merge composes overlay style o on top of the receiver per §4.7: a
// non-default foreground/background overrides, and boolean attributes OR
// together.
func (s Style) Merge(o Style) Style {
	out := s
	if o.FgColor != "" {
		out.FgColor = o.FgColor
	}
	if o.BgColor != "" {
		out.BgColor = o.BgColor
	}
	out.Bold = out.Bold || o.Bold
	out.Underline = out.Underline || o.Underline
	out.Invert = out.Invert || o.Invert
	return out
}

// DisplayRow is one row on screen after reflow. Multiple DisplayRows may
// share LineNo for soft-wrapped lines. Styles[i] is the resolved style for
// Graphemes[i] after the highlight overlay has been applied.
type DisplayRow struct {
	LineNo        int
	Graphemes     []string
	Positions     []position.Position
	Styles        []Style
	EndOfRow      position.Position
}

// highlightSpan is one applied highlight: every grapheme whose buffer
// Position lies in Range gets Style merged onto its base style.
type highlightSpan struct {
	Range position.Range
	Style Style
}

// View owns the display-row cache for a single buffer's rope snapshot. It
// is rebuilt whenever the underlying rope changes; callers call Layout
// again after any edit touching rows they display.
type View struct {
	rows []DisplayRow

	ScreenWidth int
	TabWidth    int

	scrollRow int // first visible DisplayRow index

	rememberedColumn    int
	rememberedColumnSet bool

	highlights []highlightSpan
}

// New returns a View configured for the given screen width and tab width.
func New(screenWidth, tabWidth int) *View {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &View{ScreenWidth: screenWidth, TabWidth: tabWidth}
}

// Layout recomputes DisplayRows for every line of r. Lines are reflowed in
// parallel across GOMAXPROCS-sized chunks via errgroup, since each row
// depends only on its own source line; Layout blocks until every chunk
// completes (the join §5 requires before the next event is processed).
func (v *View) Layout(r rope.Rope) {
	numLines := r.NumLines()
	if numLines == 0 {
		v.rows = nil
		return
	}

	perLine := make([][]DisplayRow, numLines)

	workers := runtime.GOMAXPROCS(0)
	if workers > numLines {
		workers = numLines
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (numLines + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < numLines; start += chunk {
		start := start
		end := start + chunk
		if end > numLines {
			end = numLines
		}
		g.Go(func() error {
			for y := start; y < end; y++ {
				perLine[y] = v.layoutLine(r, y)
			}
			return nil
		})
	}
	_ = g.Wait() // layoutLine never returns an error; join is unconditional

	var rows []DisplayRow
	for _, lineRows := range perLine {
		rows = append(rows, lineRows...)
	}
	v.rows = rows
	v.applyHighlights()
}

func (v *View) layoutLine(r rope.Rope, y int) []DisplayRow {
	cells := text.ReflowLine(r, y, v.ScreenWidth, v.TabWidth)
	if len(cells) == 0 {
		lineLen := r.LineLen(y)
		return []DisplayRow{{
			LineNo:   y,
			EndOfRow: position.Position{Y: y, X: lineLen},
		}}
	}

	var rows []DisplayRow
	curRow := cells[0].ScreenRow
	var graphemes []string
	var positions []position.Position
	flush := func(endPos position.Position) {
		rows = append(rows, DisplayRow{
			LineNo:    y,
			Graphemes: graphemes,
			Positions: positions,
			EndOfRow:  endPos,
		})
		graphemes, positions = nil, nil
	}
	for _, c := range cells {
		if c.ScreenRow != curRow {
			flush(c.BufferPos)
			curRow = c.ScreenRow
		}
		graphemes = append(graphemes, c.Printable)
		positions = append(positions, c.BufferPos)
	}
	lineLen := r.LineLen(y)
	flush(position.Position{Y: y, X: lineLen})
	return rows
}

// Rows returns the current DisplayRows.
func (v *View) Rows() []DisplayRow { return v.rows }

// Highlight records a highlight span and applies every recorded span to
// the current rows at once; Layout applies them again. ClearHighlights
// removes every span that covers a grapheme on DisplayRows
// [fromRow,toRow) (DisplayRow indices, not buffer lines).
func (v *View) Highlight(r position.Range, style Style) {
	v.highlights = append(v.highlights, highlightSpan{Range: r, Style: style})
	v.applyHighlights()
}

// ClearHighlights drops every recorded span that covers a grapheme on the
// rows in [fromRow,toRow) (DisplayRow indices) and resets those rows'
// styles to the zero Style. Other rows keep their current styles until the
// next Layout or Highlight call.
func (v *View) ClearHighlights(fromRow, toRow int) {
	touches := func(h highlightSpan) bool {
		for i := fromRow; i < toRow && i < len(v.rows); i++ {
			for _, p := range v.rows[i].Positions {
				if positionInRange(p, h.Range) {
					return true
				}
			}
		}
		return false
	}
	kept := v.highlights[:0]
	for _, h := range v.highlights {
		if !touches(h) {
			kept = append(kept, h)
		}
	}
	v.highlights = kept
	for i := fromRow; i < toRow && i < len(v.rows); i++ {
		for j := range v.rows[i].Styles {
			v.rows[i].Styles[j] = Style{}
		}
	}
}

func (v *View) applyHighlights() {
	for i := range v.rows {
		row := &v.rows[i]
		if len(row.Styles) != len(row.Positions) {
			row.Styles = make([]Style, len(row.Positions))
		} else {
			for j := range row.Styles {
				row.Styles[j] = Style{}
			}
		}
		for j, p := range row.Positions {
			for _, h := range v.highlights {
				if positionInRange(p, h.Range) {
					row.Styles[j] = row.Styles[j].Merge(h.Style)
				}
			}
		}
	}
}

func positionInRange(p position.Position, r position.Range) bool {
	front, back := r.Front(), r.Back()
	return front.LessEqual(p) && p.Less(back)
}
