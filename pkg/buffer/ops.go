package buffer

import (
	"strings"

	"github.com/arnebach/coreedit/pkg/cursor"
	"github.com/arnebach/coreedit/pkg/position"
)

func (b *Buffer) lineLenFn() position.LineLenFunc {
	return func(y int) int { return b.r.LineLen(y) }
}

// Insert replaces every cursor's selection with text (a caret's "selection"
// is empty, so this is a plain insert at each caret).
func (b *Buffer) Insert(text string) {
	b.pushUndo()
	b.EditAllCursors(func(cursor.Cursor) string { return text })
}

// Backspace deletes one grapheme (or the active selection, if non-empty)
// before each cursor.
func (b *Buffer) Backspace() {
	b.pushUndo()
	ll := b.lineLenFn()
	numLines := b.clampNumLines()
	cursors := append([]cursor.Cursor(nil), b.cs.All()...)
	for i := range cursors {
		if cursors[i].Empty() {
			cursors[i] = cursors[i].ExpandLeft(ll, numLines)
		}
	}
	b.cs.Set(cursors) // re-normalize so any collisions already merge here
	b.EditAllCursors(func(cursor.Cursor) string { return "" })
}

// Delete removes one grapheme (or the active selection) after each cursor.
func (b *Buffer) Delete() {
	b.pushUndo()
	ll := b.lineLenFn()
	numLines := b.clampNumLines()
	cursors := append([]cursor.Cursor(nil), b.cs.All()...)
	for i := range cursors {
		if cursors[i].Empty() {
			cursors[i] = cursors[i].ExpandRight(ll, numLines)
		}
	}
	b.cs.Set(cursors)
	b.EditAllCursors(func(cursor.Cursor) string { return "" })
}

// DesiredIndent computes the indentation a new line at y should receive:
// the previous non-blank line's indent width, plus one indentSize level if
// that line's last non-whitespace character is an open brace.
func (b *Buffer) DesiredIndent(y int, indentSize int, opensBlock func(rune) bool) int {
	prev := y - 1
	for prev >= 0 && strings.TrimSpace(b.r.Line(prev)) == "" {
		prev--
	}
	if prev < 0 {
		return 0
	}
	prevIndent := b.lineIndentLen(prev)
	line := strings.TrimRight(b.r.Line(prev), "\r\n")
	trimmed := strings.TrimRight(line, " \t")
	runes := []rune(trimmed)
	last := runes[len(runes)-1]
	if opensBlock(last) {
		return prevIndent + indentSize
	}
	return prevIndent
}

func (b *Buffer) lineIndentLen(y int) int {
	line := strings.TrimRight(b.r.Line(y), "\r\n")
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// DefaultOpensBlock is the `{`-only predicate used when no richer language
// awareness is available (tree-sitter integration is an external
// collaborator, per scope).
func DefaultOpensBlock(r rune) bool { return r == '{' }

// SmartNewline inserts "\n" followed by the new line's computed indent at
// each cursor, collapsing any selection first. The indent is computed
// before the edit for the line the newline creates, row Y+1:
// DesiredIndent(c.Front().Y+1, ...) starts its search for a non-blank
// line at the caret's own row Y.
func (b *Buffer) SmartNewline(indentStyle string, indentSize int, opensBlock func(rune) bool) {
	b.pushUndo()
	b.EditAllCursors(func(c cursor.Cursor) string {
		indent := b.DesiredIndent(c.Front().Y+1, indentSize, opensBlock)
		return "\n" + strings.Repeat(indentUnit(indentStyle), indent)
	})
}

func indentUnit(style string) string {
	if style == "tab" {
		return "\t"
	}
	return " "
}

// Indent increases the leading indentation of every line overlapped by any
// cursor's selection (or the caret's line, for a caret) by one indentSize
// level.
func (b *Buffer) Indent(indentStyle string, indentSize int) {
	b.pushUndo()
	unit := strings.Repeat(indentUnit(indentStyle), indentSize)
	b.editOverlappedLines(func(int) (from, to int, text string) {
		return 0, 0, unit
	})
}

// Deindent decreases the leading indentation of every overlapped line by
// one indentSize level, or by whatever leading whitespace is shorter.
// Unimplemented upstream (the original source stubs this with todo!());
// implemented here in full.
func (b *Buffer) Deindent(indentSize int) {
	b.pushUndo()
	b.editOverlappedLines(func(y int) (from, to int, text string) {
		n := b.lineIndentLen(y)
		if n > indentSize {
			n = indentSize
		}
		return 0, n, ""
	})
}

// editOverlappedLines applies fn (returning a column range within the line
// and replacement text) to every line overlapped by any cursor's
// selection, processed bottom-up so earlier edits' line-count deltas never
// disturb lines not yet processed.
func (b *Buffer) editOverlappedLines(fn func(y int) (from, to int, text string)) {
	lines := overlappedLines(b.cs.All())
	for i := len(lines) - 1; i >= 0; i-- {
		y := lines[i]
		from, to, text := fn(y)
		r := position.NewRange(position.Position{Y: y, X: from}, position.Position{Y: y, X: to})
		b.edit(r, text)
	}
}

func overlappedLines(cursors []cursor.Cursor) []int {
	seen := map[int]bool{}
	var out []int
	for _, c := range cursors {
		front, back := c.Front(), c.Back()
		end := back.Y
		if back.X == 0 && end > front.Y {
			end--
		}
		for y := front.Y; y <= end; y++ {
			if !seen[y] {
				seen[y] = true
				out = append(out, y)
			}
		}
	}
	sortInts(out)
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// CommentToggle toggles a line-comment token across every overlapped line:
// if every such line already starts (after leading whitespace) with token,
// it is removed from each; otherwise token+" " is inserted at each line's
// first non-whitespace column.
func (b *Buffer) CommentToggle(token string) {
	lines := overlappedLines(b.cs.All())
	if len(lines) == 0 {
		return
	}
	allCommented := true
	for _, y := range lines {
		if !strings.HasPrefix(strings.TrimLeft(b.stripTerminator(b.r.Line(y)), " \t"), token) {
			allCommented = false
			break
		}
	}
	b.pushUndo()
	for i := len(lines) - 1; i >= 0; i-- {
		y := lines[i]
		indent := b.lineIndentLen(y)
		if allCommented {
			r := position.NewRange(position.Position{Y: y, X: indent}, position.Position{Y: y, X: indent + len([]rune(token))})
			b.edit(r, "")
		} else {
			r := position.NewRange(position.Position{Y: y, X: indent}, position.Position{Y: y, X: indent})
			b.edit(r, token+" ")
		}
	}
}

func (b *Buffer) stripTerminator(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}

// DuplicateLines copies every overlapped line block; if below is true the
// cursor moves onto the copy, otherwise it stays on the original.
func (b *Buffer) DuplicateLines(below bool) {
	b.pushUndo()
	lines := overlappedLines(b.cs.All())
	if len(lines) == 0 {
		return
	}
	minY, maxY := lines[0], lines[len(lines)-1]
	var block strings.Builder
	for y := minY; y <= maxY; y++ {
		block.WriteString(b.r.Line(y))
	}
	text := block.String()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	// Insert strictly after the block so the original lines' coordinates
	// are left untouched; only a below-moving cursor needs repositioning.
	at := position.Position{Y: maxY + 1, X: 0}
	b.edit(position.NewRange(at, at), text)
	if below {
		shift := maxY - minY + 1
		cursors := b.cs.All()
		moved := make([]cursor.Cursor, len(cursors))
		for i, c := range cursors {
			moved[i] = cursor.Cursor{
				Anchor: position.Position{Y: c.Anchor.Y + shift, X: c.Anchor.X},
				Moving: position.Position{Y: c.Moving.Y + shift, X: c.Moving.X},
				Main:   c.Main,
			}
		}
		b.cs.Set(moved)
	}
}

// MoveLinesUp/MoveLinesDown swap the overlapped-lines block with the
// adjacent line, preserving selection relative to the moved block.
func (b *Buffer) MoveLinesUp() { b.moveLines(-1) }
func (b *Buffer) MoveLinesDown() { b.moveLines(1) }

func (b *Buffer) moveLines(dir int) {
	lines := overlappedLines(b.cs.All())
	if len(lines) == 0 {
		return
	}
	minY, maxY := lines[0], lines[len(lines)-1]
	if dir < 0 && minY == 0 {
		return
	}
	if dir > 0 && maxY >= b.r.NumLines()-1 {
		return
	}
	b.pushUndo()

	var blockStart, blockEnd, adjStart, adjEnd int
	if dir < 0 {
		adjStart, adjEnd = minY-1, minY
		blockStart, blockEnd = minY, maxY+1
	} else {
		blockStart, blockEnd = minY, maxY+1
		adjStart, adjEnd = maxY+1, maxY+2
	}

	var blockText, adjText strings.Builder
	for y := blockStart; y < blockEnd; y++ {
		blockText.WriteString(b.r.Line(y))
	}
	for y := adjStart; y < adjEnd; y++ {
		adjText.WriteString(b.r.Line(y))
	}

	lo := minY
	if dir > 0 {
		lo = minY
	} else {
		lo = minY - 1
	}
	hi := maxY + 1
	if dir > 0 {
		hi = maxY + 2
	}
	var replacement string
	if dir < 0 {
		replacement = blockText.String() + adjText.String()
	} else {
		replacement = adjText.String() + blockText.String()
	}
	r := position.NewRange(position.Position{Y: lo, X: 0}, position.Position{Y: hi, X: 0})
	b.edit(r, replacement)

	shift := dir
	cursors := b.cs.All()
	moved := make([]cursor.Cursor, len(cursors))
	for i, c := range cursors {
		moved[i] = cursor.Cursor{
			Anchor: position.Position{Y: c.Anchor.Y + shift, X: c.Anchor.X},
			Moving: position.Position{Y: c.Moving.Y + shift, X: c.Moving.X},
			Main:   c.Main,
		}
	}
	b.cs.Set(moved)
}

// ContainingNode is the callback signature "Expand selection" walks up a
// syntactic tree with; nil means no highlighter is attached, in which case
// ExpandSelection is a no-op.
type ContainingNode func(position.Range) position.Range

// ExpandSelection grows every cursor's selection to the smallest node
// strictly containing it, per containingNode (supplied by an external
// highlighter). A nil containingNode makes this a no-op.
func (b *Buffer) ExpandSelection(containingNode ContainingNode) {
	if containingNode == nil {
		return
	}
	cursors := append([]cursor.Cursor(nil), b.cs.All()...)
	for i, c := range cursors {
		grown := containingNode(c.Selection())
		cursors[i] = cursor.Cursor{Anchor: grown.Front(), Moving: grown.Back(), Main: c.Main}
	}
	b.cs.Set(cursors)
}
