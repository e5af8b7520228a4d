package buffer

import (
	"github.com/arnebach/coreedit/internal/undo"
	"github.com/arnebach/coreedit/pkg/cursor"
)

// pushUndo records a checkpoint to return to and invalidates any redo
// history, since it is no longer the future of the new edit about to
// happen. undo and redo are two independent Stacks, each used only as
// a push/pop LIFO, so the state being left behind on an Undo or Redo
// call is always pushed onto the opposite stack by hand rather than
// by any built-in pairing inside Stack itself.
func (b *Buffer) pushUndo() {
	b.undo.Push(b.snapshot())
	b.redo = undo.New[snapshot](maxUndoDepth)
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{r: b.r, cursors: append([]cursor.Cursor(nil), b.cs.All()...)}
}

func (b *Buffer) restore(snap snapshot) {
	b.r = snap.r
	b.cs.Set(snap.cursors)
}

// Undo reverts to the last pushed checkpoint, if any, stashing the
// state being left so Redo can return to it. It is in-memory only and
// does not survive process restart (undo history lives only as long
// as the Buffer value does).
func (b *Buffer) Undo() bool {
	snap, ok := b.undo.Pop()
	if !ok {
		return false
	}
	b.redo.Push(b.snapshot())
	b.restore(snap)
	return true
}

// Redo re-applies the most recently undone edit group, if any.
func (b *Buffer) Redo() bool {
	snap, ok := b.redo.Pop()
	if !ok {
		return false
	}
	b.undo.Push(b.snapshot())
	b.restore(snap)
	return true
}

// CanUndo/CanRedo report whether Undo/Redo would succeed.
func (b *Buffer) CanUndo() bool { return b.undo.CanPop() }
func (b *Buffer) CanRedo() bool { return b.redo.CanPop() }
