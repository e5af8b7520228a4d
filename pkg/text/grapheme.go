// ABOUTME: grapheme cluster segmentation and bidirectional line-local iteration
// ABOUTME: builds on uniseg's forward-only API; backward stepping walks a precomputed slice

package text

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

// Graphemes splits s into its extended grapheme clusters (UAX#29) in order.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
		s = rest
		state = newState
	}
	return out
}

// LineGraphemes returns line y's grapheme clusters with its line terminator
// (CR, LF, or CRLF) stripped.
func LineGraphemes(r rope.Rope, y int) []string {
	line := r.Line(y)
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return Graphemes(line)
}

// GraphemeIter walks a buffer's grapheme clusters, addressed by Position,
// bidirectionally. uniseg only segments forward; backward stepping is
// implemented by indexing into the current line's precomputed forward
// segmentation rather than calling an unverified reverse API.
type GraphemeIter struct {
	r        rope.Rope
	y        int
	x        int
	clusters []string
}

// NewGraphemeIterAt positions a GraphemeIter at pos. Next yields pos itself
// first; Prev yields the grapheme immediately before pos first.
func NewGraphemeIterAt(r rope.Rope, pos position.Position) *GraphemeIter {
	it := &GraphemeIter{r: r, y: pos.Y, x: pos.X}
	it.clusters = LineGraphemes(r, it.y)
	return it
}

// Position returns the iterator's current location.
func (it *GraphemeIter) Position() position.Position {
	return position.Position{Y: it.y, X: it.x}
}

// Next returns the grapheme at the current position and advances, wrapping
// onto the next buffer line at end-of-line. ok is false at end-of-buffer.
func (it *GraphemeIter) Next() (pos position.Position, grapheme string, ok bool) {
	for {
		if it.x < len(it.clusters) {
			pos = position.Position{Y: it.y, X: it.x}
			grapheme = it.clusters[it.x]
			it.x++
			return pos, grapheme, true
		}
		if it.y+1 >= it.r.NumLines() {
			return position.Position{}, "", false
		}
		it.y++
		it.x = 0
		it.clusters = LineGraphemes(it.r, it.y)
	}
}

// Prev moves backward and returns the grapheme immediately before the
// current position. ok is false at the start of the buffer.
func (it *GraphemeIter) Prev() (pos position.Position, grapheme string, ok bool) {
	for {
		if it.x > 0 {
			it.x--
			pos = position.Position{Y: it.y, X: it.x}
			grapheme = it.clusters[it.x]
			return pos, grapheme, true
		}
		if it.y == 0 {
			return position.Position{}, "", false
		}
		it.y--
		it.clusters = LineGraphemes(it.r, it.y)
		it.x = len(it.clusters)
	}
}
