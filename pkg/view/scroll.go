package view

import "github.com/arnebach/coreedit/pkg/position"

// displayRowOf returns the index of the DisplayRow containing buffer
// position p's line, preferring the row whose column span covers p.X, or
// the last row of that line if p.X is past every span (e.g. end-of-line).
func (v *View) displayRowOf(p position.Position) int {
	last := -1
	for i, row := range v.rows {
		if row.LineNo != p.Y {
			continue
		}
		last = i
		if len(row.Positions) == 0 {
			if p.X == row.EndOfRow.X {
				return i
			}
			continue
		}
		if p.Less(row.EndOfRow) && (row.Positions[0].X <= p.X || i == 0) {
			return i
		}
	}
	if last >= 0 {
		return last
	}
	return 0
}

// ClampScroll moves the scroll position (in whole DisplayRow units) so the
// main cursor's row lies within [scrollRow, scrollRow+visibleRows).
func (v *View) ClampScroll(mainCursor position.Position, visibleRows int) {
	if len(v.rows) == 0 || visibleRows <= 0 {
		return
	}
	row := v.displayRowOf(mainCursor)
	if row < v.scrollRow {
		v.scrollRow = row
	}
	if row >= v.scrollRow+visibleRows {
		v.scrollRow = row - visibleRows + 1
	}
	maxScroll := len(v.rows) - visibleRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scrollRow > maxScroll {
		v.scrollRow = maxScroll
	}
	if v.scrollRow < 0 {
		v.scrollRow = 0
	}
}

// ScrollRow returns the index of the first visible DisplayRow.
func (v *View) ScrollRow() int { return v.scrollRow }

// VisibleRows returns the DisplayRows in [ScrollRow(), ScrollRow()+n).
func (v *View) VisibleRows(n int) []DisplayRow {
	start := v.scrollRow
	if start > len(v.rows) {
		start = len(v.rows)
	}
	end := start + n
	if end > len(v.rows) {
		end = len(v.rows)
	}
	return v.rows[start:end]
}

func (v *View) columnAt(rowIdx, col int) position.Position {
	if rowIdx < 0 {
		rowIdx = 0
	}
	if rowIdx >= len(v.rows) {
		rowIdx = len(v.rows) - 1
	}
	if rowIdx < 0 {
		return position.Zero
	}
	row := v.rows[rowIdx]
	if len(row.Positions) == 0 {
		return row.EndOfRow
	}
	if col >= len(row.Positions) {
		return row.EndOfRow
	}
	if col < 0 {
		col = 0
	}
	return row.Positions[col]
}

// SetRememberedColumn sets the remembered visual column used by
// vertical cursor motion (§4.7). Any explicit horizontal motion must call
// ClearRememberedColumn; any explicit vertical motion first reads
// RememberedColumn, then leaves it untouched for subsequent vertical steps
// in the same gesture.
func (v *View) SetRememberedColumn(col int) {
	v.rememberedColumn = col
	v.rememberedColumnSet = true
}

// ClearRememberedColumn drops the remembered visual column; the next
// vertical motion will start fresh from its own current column.
func (v *View) ClearRememberedColumn() {
	v.rememberedColumnSet = false
}

// RememberedColumn returns the remembered visual column and whether one is
// set.
func (v *View) RememberedColumn() (int, bool) {
	return v.rememberedColumn, v.rememberedColumnSet
}

// MoveVerticalBy returns the position one DisplayRow away (delta=-1 for up,
// +1 for down) from cur, targeting max(currentColumn, remembered) clamped
// to the destination row's length, and records the remembered column for
// subsequent vertical steps.
func (v *View) MoveVerticalBy(cur position.Position, delta int) position.Position {
	curRow := v.displayRowOf(cur)
	curCol := v.columnIndexIn(curRow, cur)

	target := curCol
	if rem, ok := v.RememberedColumn(); ok && rem > target {
		target = rem
	}
	v.SetRememberedColumn(target)

	nextRow := curRow + delta
	if nextRow < 0 || nextRow >= len(v.rows) {
		return cur
	}
	return v.columnAt(nextRow, target)
}

func (v *View) columnIndexIn(rowIdx int, p position.Position) int {
	if rowIdx < 0 || rowIdx >= len(v.rows) {
		return 0
	}
	row := v.rows[rowIdx]
	for i, rp := range row.Positions {
		if rp == p {
			return i
		}
	}
	return len(row.Positions)
}
