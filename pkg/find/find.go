// Package find implements §4.4's bidirectional substring search over a
// rope, plus a fuzzy-match layer for interactive "go to line/file" style
// lookups. Exact search is plain stdlib (strings.Index/LastIndex, per
// DESIGN.md — no third-party substring matcher in the retrieval pack
// improves on it); the fuzzy layer is the
// teacher's pkg/tui/fuzzy wrapper, exercised here for the first time
// against editor content (buffer lines, candidate file paths) rather than
// the teacher's original command/model-name lists.
package find

import (
	"strings"

	"github.com/arnebach/coreedit/pkg/fuzzy"
	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

// Match is one exact occurrence of a query string, expressed both as a
// char offset (for rope.Slice/Edit) and a buffer Position (for cursor
// placement).
type Match struct {
	CharOffset int
	Pos        position.Position
}

// Finder runs repeated exact searches against a fixed rope snapshot.
// Ropes are immutable, so a Finder never goes stale mid-search even if
// the live buffer is edited concurrently; callers construct a fresh
// Finder after each edit they want reflected.
type Finder struct {
	r    rope.Rope
	text string
}

func NewFinder(r rope.Rope) *Finder {
	return &Finder{r: r, text: r.Text()}
}

// Next returns the first occurrence of query at or after from (a char
// offset), scanning forward. An empty query never matches.
func (f *Finder) Next(query string, from int) (Match, bool) {
	if query == "" {
		return Match{}, false
	}
	return f.search(query, from, true)
}

// Prev returns the occurrence of query strictly before from, scanning
// backward.
func (f *Finder) Prev(query string, from int) (Match, bool) {
	if query == "" {
		return Match{}, false
	}
	return f.search(query, from, false)
}

// runes/charIndexToByte convert between the rope's char-index address
// space and Go's byte-indexed strings.Index results, since the source
// text may contain multi-byte runes.
func (f *Finder) runes() []rune {
	return []rune(f.text)
}

func (f *Finder) charIndexToByte(charIdx int) int {
	runes := f.runes()
	if charIdx >= len(runes) {
		return len(f.text)
	}
	return len(string(runes[:charIdx]))
}

func (f *Finder) byteIndexToChar(byteIdx int) int {
	return len([]rune(f.text[:byteIdx]))
}

func (f *Finder) search(query string, from int, forward bool) (Match, bool) {
	runes := f.runes()
	if from < 0 {
		from = 0
	}
	if from > len(runes) {
		from = len(runes)
	}

	var charOffset int
	if forward {
		startByte := f.charIndexToByte(from)
		idx := strings.Index(f.text[startByte:], query)
		if idx < 0 {
			return Match{}, false
		}
		charOffset = f.byteIndexToChar(startByte + idx)
	} else {
		endByte := f.charIndexToByte(from)
		idx := strings.LastIndex(f.text[:endByte], query)
		if idx < 0 {
			return Match{}, false
		}
		charOffset = f.byteIndexToChar(idx)
	}

	return Match{CharOffset: charOffset, Pos: f.posAt(charOffset)}, true
}

func (f *Finder) posAt(charOffset int) position.Position {
	y := f.r.CharToLine(charOffset)
	x := charOffset - f.r.LineToChar(y)
	return position.Position{Y: y, X: x}
}

// Candidate is one fuzzy-searchable target: a buffer line or a file path,
// depending on what's being navigated to.
type Candidate struct {
	Label string
	Pos   position.Position
}

// FuzzyFindLines ranks every line of r against pattern using the
// sahilm/fuzzy-backed matcher, for a "go to line" palette: each result's
// Index is the line number it matched.
func FuzzyFindLines(r rope.Rope, pattern string) []fuzzy.Match {
	n := r.NumLines()
	lines := make([]string, n)
	for y := 0; y < n; y++ {
		lines[y] = r.Line(y)
	}
	return fuzzy.Find(pattern, lines)
}

// FuzzyFindPaths ranks candidate file paths against pattern, for a
// "go to file" palette fed by a project file listing rather than buffer
// content.
func FuzzyFindPaths(pattern string, paths []string) []fuzzy.Match {
	return fuzzy.Find(pattern, paths)
}
