// Package cursor implements Cursor and CursorSet: the multi-cursor
// selection model that sits above pkg/position's Range algebra.
package cursor

import (
	"errors"
	"sort"

	"github.com/arnebach/coreedit/pkg/position"
)

// ErrEmptySet is the invariant violation panic value when a caller attempts
// to set a CursorSet to zero cursors; the set must always contain at least
// one.
var ErrEmptySet = errors.New("cursor: set cannot be empty")

// Cursor is a Range plus an explicit anchor: the endpoint directional
// selection commands (shift+arrow, etc.) do not move. For a caret,
// Anchor == Moving == the same Position.
type Cursor struct {
	Anchor position.Position
	Moving position.Position
	Main   bool
}

// NewCaret returns an empty-selection cursor at p.
func NewCaret(p position.Position) Cursor {
	return Cursor{Anchor: p, Moving: p}
}

// Selection returns the cursor's Range (Anchor, Moving) in whatever order
// they were set; callers needing document order use Front()/Back() on it.
func (c Cursor) Selection() position.Range {
	return position.NewRange(c.Anchor, c.Moving)
}

// Front returns the earlier endpoint in document order.
func (c Cursor) Front() position.Position { return c.Selection().Front() }

// Back returns the later endpoint in document order.
func (c Cursor) Back() position.Position { return c.Selection().Back() }

// Empty reports whether the cursor is a caret (no selection).
func (c Cursor) Empty() bool { return c.Anchor == c.Moving }

// MoveTo collapses the cursor to a caret at p, clearing any selection.
func (c Cursor) MoveTo(p position.Position) Cursor {
	return Cursor{Anchor: p, Moving: p, Main: c.Main}
}

// ExpandLeft/ExpandRight extend the moving end by one grapheme step,
// leaving Anchor fixed; lineLen supplies per-line lengths for clamping at
// line boundaries the same way Position.MoveBy does.
func (c Cursor) ExpandLeft(lineLen position.LineLenFunc, numLines int) Cursor {
	c.Moving = c.Moving.MoveBy(lineLen, numLines, 0, 0, 1, 0)
	return c
}

func (c Cursor) ExpandRight(lineLen position.LineLenFunc, numLines int) Cursor {
	c.Moving = c.Moving.MoveBy(lineLen, numLines, 0, 0, 0, 1)
	return c
}

// CursorSet is a sorted, non-overlapping sequence of cursors. It is never
// empty; the zero value is invalid (use New).
type CursorSet struct {
	cursors []Cursor
}

// New builds a CursorSet from cursors via Set, which sorts and dedupes.
func New(cursors ...Cursor) *CursorSet {
	cs := &CursorSet{}
	cs.Set(cursors)
	return cs
}

// Len returns the number of cursors.
func (cs *CursorSet) Len() int { return len(cs.cursors) }

// All returns the cursors in sorted (front-ascending) order. The returned
// slice must not be mutated by the caller.
func (cs *CursorSet) All() []Cursor { return cs.cursors }

// Main returns the designated main cursor and its index.
func (cs *CursorSet) Main() (Cursor, int) {
	for i, c := range cs.cursors {
		if c.Main {
			return c, i
		}
	}
	// Invariant: Set always designates exactly one main cursor.
	return cs.cursors[0], 0
}

// Set replaces the cursor set: sorts by Front(), drops any cursor whose
// selection overlaps an earlier one (in the new sorted order), and
// preserves main-cursor identity onto the earliest surviving cursor that
// had it, defaulting to index 0 if none did. Panics if new_cursors is
// empty, which the core itself must never allow.
func (cs *CursorSet) Set(newCursors []Cursor) {
	if len(newCursors) == 0 {
		panic(ErrEmptySet)
	}
	sorted := append([]Cursor(nil), newCursors...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Front().Less(sorted[j].Front())
	})

	var out []Cursor
	for _, c := range sorted {
		duplicate := false
		for _, kept := range out {
			if kept.Selection().OverlapsWith(c.Selection()) {
				duplicate = true
				if c.Main {
					// propagate main flag to the survivor
					for i := range out {
						if out[i].Front() == kept.Front() && out[i].Back() == kept.Back() {
							out[i].Main = true
						}
					}
				}
				break
			}
		}
		if !duplicate {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		panic(ErrEmptySet)
	}
	if !anyMain(out) {
		out[0].Main = true
	}
	cs.cursors = out
}

func anyMain(cursors []Cursor) bool {
	for _, c := range cursors {
		if c.Main {
			return true
		}
	}
	return false
}

// UpdateEach applies f to every cursor (independently, without seeing the
// effects of sibling updates), then re-normalizes via Set.
func (cs *CursorSet) UpdateEach(f func(Cursor) Cursor) {
	updated := make([]Cursor, len(cs.cursors))
	for i, c := range cs.cursors {
		updated[i] = f(c)
	}
	cs.Set(updated)
}

// ExpandLeft/ExpandRight extend every cursor's moving end by one step.
func (cs *CursorSet) ExpandLeft(lineLen position.LineLenFunc, numLines int) {
	cs.UpdateEach(func(c Cursor) Cursor { return c.ExpandLeft(lineLen, numLines) })
}

func (cs *CursorSet) ExpandRight(lineLen position.LineLenFunc, numLines int) {
	cs.UpdateEach(func(c Cursor) Cursor { return c.ExpandRight(lineLen, numLines) })
}

// ShiftForEdit transforms a cursor that follows the one just edited
// (a "past" cursor, already processed in the edit engine's bottom-up,
// right-to-left order) by
// the position delta an edit produced. rangeBack is the back of the range
// that was just replaced; newMain is the caret position the edit collapsed
// to. Both endpoints sharing rangeBack's line are realigned by the new
// column before every endpoint's line is shifted by the line-count delta.
func ShiftForEdit(c Cursor, rangeBack, newMain position.Position) Cursor {
	yDiff := newMain.Y - rangeBack.Y
	shiftEndpoint := func(p position.Position) position.Position {
		if p.Y == rangeBack.Y {
			p.X = newMain.X + (p.X - rangeBack.X)
		}
		p.Y += yDiff
		return p
	}
	c.Anchor = shiftEndpoint(c.Anchor)
	c.Moving = shiftEndpoint(c.Moving)
	return c
}
