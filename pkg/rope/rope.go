// Package rope implements a persistent, UTF-8-aware tree over text.
// FromText builds it balanced; Edit does not rebalance it.
// Every edit returns a new Rope; the old value remains valid and cheap to
// keep around, which is what lets background consumers (highlighters, LSP
// sync, git diff) snapshot text without locking the live buffer.
package rope

import (
	"io"
	"strings"
)

// splitThreshold bounds how many bytes FromText puts in one leaf. Edit
// neither splits nor rebalances: it joins the two halves around a single
// new leaf holding all of newText, however long that is.
const splitThreshold = 1024

// Rope is an immutable snapshot of UTF-8 text.
type Rope struct {
	root node
}

// Empty is the zero-length Rope.
var Empty = Rope{root: leaf{}}

// FromText builds a Rope from a string in a single pass.
func FromText(s string) Rope {
	if s == "" {
		return Empty
	}
	return Rope{root: buildBalanced(splitIntoLeaves(s))}
}

// FromReader builds a Rope by draining r.
func FromReader(r io.Reader) (Rope, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Empty, err
	}
	return FromText(string(b)), nil
}

func splitIntoLeaves(s string) []node {
	if len(s) <= splitThreshold {
		return []node{leaf{text: s, stats: statsOf(s)}}
	}
	// split on a line boundary near the midpoint so lines never straddle
	// more leaves than necessary; fall back to a byte midpoint that does
	// not split a UTF-8 rune.
	mid := len(s) / 2
	if idx := strings.IndexByte(s[mid:], '\n'); idx >= 0 && mid+idx+1 <= len(s) {
		mid = mid + idx + 1
	} else {
		for mid > 0 && mid < len(s) && !isRuneStart(s[mid]) {
			mid--
		}
	}
	if mid <= 0 || mid >= len(s) {
		return []node{leaf{text: s, stats: statsOf(s)}}
	}
	left := splitIntoLeaves(s[:mid])
	right := splitIntoLeaves(s[mid:])
	return append(left, right...)
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func buildBalanced(leaves []node) node {
	if len(leaves) == 0 {
		return leaf{}
	}
	if len(leaves) == 1 {
		return leaves[0]
	}
	mid := len(leaves) / 2
	l := buildBalanced(leaves[:mid])
	r := buildBalanced(leaves[mid:])
	return newInternal(l, r)
}

// LenBytes returns the rope's length in bytes.
func (r Rope) LenBytes() int { return statsOfNode(r.root).bytes }

// LenChars returns the rope's length in Unicode codepoints.
func (r Rope) LenChars() int { return statsOfNode(r.root).chars }

// NumLines returns the number of lines, defined as the LF count plus one
// (a trailing LF creates an empty final line).
func (r Rope) NumLines() int { return statsOfNode(r.root).newlines + 1 }

// LineLen returns the number of codepoints on line y, excluding a trailing
// CR or LF.
func (r Rope) LineLen(y int) int {
	line := r.Line(y)
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return runeCount(line)
}

// Line returns the raw text of line y including its terminating newline (if
// any); the final line has none.
func (r Rope) Line(y int) string {
	start := r.LineToChar(y)
	var end int
	if y+1 < r.NumLines() {
		end = r.LineToChar(y + 1)
	} else {
		end = r.LenChars()
	}
	return r.Slice(start, end)
}

// Text returns the rope's full contents as a string.
func (r Rope) Text() string {
	var b strings.Builder
	b.Grow(r.LenBytes())
	writeNode(r.root, &b)
	return b.String()
}

// WriteTo streams the rope's contents to w.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, strings.NewReader(r.Text()))
}

// Slice returns the substring spanning char indices [from, to).
func (r Rope) Slice(from, to int) string {
	if from >= to {
		return ""
	}
	var b strings.Builder
	sliceNode(r.root, from, to, &b)
	return b.String()
}

// CharToByte converts a char (codepoint) index to a byte offset.
func (r Rope) CharToByte(char int) int {
	return charToByteNode(r.root, char)
}

// ByteToChar converts a byte offset to a char (codepoint) index.
func (r Rope) ByteToChar(b int) int {
	return byteToCharNode(r.root, b)
}

// CharToLine converts a char index to the line it falls on.
func (r Rope) CharToLine(char int) int {
	return charToLineNode(r.root, char)
}

// LineToChar converts a line index to the char index of its first column.
func (r Rope) LineToChar(line int) int {
	if line <= 0 {
		return 0
	}
	return lineToCharNode(r.root, line)
}

// Edit replaces the char range [from,to) with newText and returns the
// resulting Rope. The receiver is left untouched; untouched subtrees are
// shared between the old and new rope rather than copied.
func (r Rope) Edit(from, to int, newText string) Rope {
	left, rest := splitNode(r.root, from)
	_, right := splitNode(rest, to-from)
	var mid node = leaf{}
	if newText != "" {
		mid = leaf{text: newText, stats: statsOf(newText)}
	}
	return Rope{root: newInternal(newInternal(left, mid), right)}
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
