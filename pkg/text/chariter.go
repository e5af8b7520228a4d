package text

import (
	"unicode/utf8"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

// CharIter walks a buffer codepoint by codepoint (not grapheme cluster),
// bidirectionally. It does not drive Position.X arithmetic, which always
// addresses graphemes.
type CharIter struct {
	r       rope.Rope
	charIdx int
	pos     position.Position
}

// NewCharIterAt positions a CharIter at the codepoint corresponding to pos.
func NewCharIterAt(r rope.Rope, pos position.Position) *CharIter {
	lineStart := r.LineToChar(pos.Y)
	return &CharIter{r: r, charIdx: lineStart + pos.X, pos: pos}
}

// Next returns the rune at the iterator's current position and the Position
// it advanced past, skipping CR (which never advances the line/column
// counters it reports). ok is false at end-of-buffer.
func (it *CharIter) Next() (pos position.Position, r rune, ok bool) {
	for {
		if it.charIdx >= it.r.LenChars() {
			return position.Position{}, 0, false
		}
		s := it.r.Slice(it.charIdx, it.charIdx+1)
		rn, _ := utf8.DecodeRuneInString(s)
		it.charIdx++
		if rn == '\r' {
			continue
		}
		cur := it.pos
		if rn == '\n' {
			it.pos = position.Position{Y: it.pos.Y + 1, X: 0}
		} else {
			it.pos.X++
		}
		return cur, rn, true
	}
}

// Prev moves backward one codepoint, skipping CR. ok is false at
// start-of-buffer.
func (it *CharIter) Prev() (pos position.Position, r rune, ok bool) {
	for {
		if it.charIdx <= 0 {
			return position.Position{}, 0, false
		}
		s := it.r.Slice(it.charIdx-1, it.charIdx)
		rn, _ := utf8.DecodeRuneInString(s)
		it.charIdx--
		if rn == '\r' {
			continue
		}
		y := it.r.CharToLine(it.charIdx)
		x := it.charIdx - it.r.LineToChar(y)
		it.pos = position.Position{Y: y, X: x}
		return it.pos, rn, true
	}
}
