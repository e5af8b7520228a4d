// Package buffer is the mutable editing surface: a rope plus a cursor set
// plus the multi-cursor edit engine that keeps both consistent. It is the
// sole interface through which all editing operations flow; views and
// highlighters only ever observe it through Change records, while the undo
// history keeps (rope, cursors) snapshots of its own.
package buffer

import (
	"io"

	"github.com/arnebach/coreedit/internal/undo"
	"github.com/arnebach/coreedit/pkg/changefeed"
	"github.com/arnebach/coreedit/pkg/cursor"
	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

const maxUndoDepth = 500

// Change is emitted for every edit; it is the sole interface between the
// edit engine and its subscribers (highlighter, LSP sync, git diff).
type Change struct {
	Range           position.Range
	InsertedText    string
	NewMainPosition position.Position
	ByteRangeBefore [2]int
}

type snapshot struct {
	r       rope.Rope
	cursors []cursor.Cursor
}

// Buffer owns a rope and a cursor set and mediates every mutation between
// them through the edit engine in edit.go.
type Buffer struct {
	r       rope.Rope
	cs      *cursor.CursorSet
	changes *changefeed.VersionedBus[Change]
	undo    *undo.Stack[snapshot]
	redo    *undo.Stack[snapshot]
	dirty   bool
}

// New returns an empty buffer with a single caret at (0,0).
func New() *Buffer {
	return fromRope(rope.Empty)
}

// FromText returns a buffer seeded with s and a single caret at (0,0).
func FromText(s string) *Buffer {
	return fromRope(rope.FromText(s))
}

// FromReader returns a buffer seeded by draining r.
func FromReader(r io.Reader) (*Buffer, error) {
	rp, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	return fromRope(rp), nil
}

func fromRope(r rope.Rope) *Buffer {
	b := &Buffer{
		r:       r,
		cs:      cursor.New(cursor.NewCaret(position.Zero)),
		changes: changefeed.NewVersioned[Change](),
		undo:    undo.New[snapshot](maxUndoDepth),
		redo:    undo.New[snapshot](maxUndoDepth),
	}
	return b
}

// Text returns the buffer's full contents.
func (b *Buffer) Text() string { return b.r.Text() }

// Rope returns the buffer's current immutable snapshot; safe to hold and
// pass to background consumers, since it is never mutated in place.
func (b *Buffer) Rope() rope.Rope { return b.r }

// NumLines returns the buffer's line count (LF count plus one).
func (b *Buffer) NumLines() int { return b.r.NumLines() }

// LineLen returns line y's grapheme-excluding-terminator length in chars;
// see pkg/text for grapheme-accurate column mapping built on this.
func (b *Buffer) LineLen(y int) int { return b.r.LineLen(y) }

// Cursors returns the current cursor set. The returned slice must not be
// mutated by the caller.
func (b *Buffer) Cursors() []cursor.Cursor { return b.cs.All() }

// SetCursors replaces the cursor set (sorts, dedupes, fails on empty).
func (b *Buffer) SetCursors(cursors []cursor.Cursor) { b.cs.Set(cursors) }

// Dirty reports whether the buffer has unsaved changes.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkClean clears the dirty flag after a successful save.
func (b *Buffer) MarkClean() { b.dirty = false }

// Subscribe registers a handler for Change records, tagged with the
// version they were committed at. Returns an unsubscribe function.
func (b *Buffer) Subscribe(h func(changefeed.Versioned[Change])) func() {
	return b.changes.Subscribe(h)
}

// clampNumLines is the upper Y bound passed to Position arithmetic: the
// buffer's line count itself, since Position(NumLines(),0) is EOF.
func (b *Buffer) clampNumLines() int { return b.r.NumLines() }
