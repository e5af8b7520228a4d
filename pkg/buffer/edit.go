package buffer

import (
	"github.com/arnebach/coreedit/pkg/cursor"
	"github.com/arnebach/coreedit/pkg/position"
)

// rangeToChars converts a Range's front/back Positions to char indices into
// the buffer's rope.
func (b *Buffer) rangeToChars(r position.Range) (from, to int) {
	front, back := r.Front(), r.Back()
	from = b.r.LineToChar(front.Y) + front.X
	to = b.r.LineToChar(back.Y) + back.X
	return
}

// edit replaces r (front..back, as char indices) with newText, commits the
// new rope, and publishes a Change record. It does not touch the cursor
// set; callers position the caret themselves.
func (b *Buffer) edit(r position.Range, newText string) Change {
	from, to := b.rangeToChars(r)
	byteFrom := b.r.CharToByte(from)
	byteTo := b.r.CharToByte(to)

	b.r = b.r.Edit(from, to, newText)
	b.dirty = true

	newMain := position.PositionAfterEdit(r.Front(), newText)
	ch := Change{
		Range:           r.Normalized(),
		InsertedText:    newText,
		NewMainPosition: newMain,
		ByteRangeBefore: [2]int{byteFrom, byteTo},
	}
	b.changes.Publish(ch)
	return ch
}

// EditAtCursor runs one step of the multi-cursor edit pipeline: it replaces
// the selection of the cursor at index i with newText, repositions that
// cursor to the resulting caret, and repairs every cursor that follows it
// in document order (the "past" cursors: those already processed by the
// bottom-up/right-to-left iteration EditAllCursors drives). Cursors before
// index i lie in front of the edit and are left as they are. It returns the updated full cursor
// slice (not yet re-normalized by CursorSet.Set — callers batch that after
// processing every cursor).
func (b *Buffer) EditAtCursor(cursors []cursor.Cursor, i int, newText string) []cursor.Cursor {
	current := cursors[i]
	r := current.Selection().Normalized()
	rangeBack := r.Back()

	ch := b.edit(r, newText)

	out := make([]cursor.Cursor, len(cursors))
	copy(out, cursors)
	out[i] = current.MoveTo(ch.NewMainPosition)
	out[i].Main = current.Main

	for j := i + 1; j < len(out); j++ {
		out[j] = cursor.ShiftForEdit(out[j], rangeBack, ch.NewMainPosition)
	}
	return out
}

// EditAllCursors applies newTextFor to every cursor in the set, bottom-up
// and right-to-left: cursors still waiting their turn lie in front of each
// edit and are unaffected by it, so each edit's position delta only ever
// needs to shift the cursors already processed, which follow it in
// document order. After every cursor is processed the set is re-normalized, which
// merges any cursors that landed on the same selection (e.g. a multi-cursor
// backspace absorbing consecutive leading newlines).
func (b *Buffer) EditAllCursors(newTextFor func(cursor.Cursor) string) {
	cursors := append([]cursor.Cursor(nil), b.cs.All()...)
	for i := len(cursors) - 1; i >= 0; i-- {
		text := newTextFor(cursors[i])
		cursors = b.EditAtCursor(cursors, i, text)
	}
	b.cs.Set(cursors)
}
