package find

import (
	"testing"

	"github.com/arnebach/coreedit/pkg/rope"
)

func TestFinderNextFindsForwardOccurrence(t *testing.T) {
	r := rope.FromText("foo bar foo baz\n")
	f := NewFinder(r)

	m, ok := f.Next("foo", 0)
	if !ok || m.CharOffset != 0 {
		t.Fatalf("expected first match at 0, got %+v ok=%v", m, ok)
	}

	m2, ok := f.Next("foo", m.CharOffset+1)
	if !ok || m2.CharOffset != 8 {
		t.Fatalf("expected second match at 8, got %+v ok=%v", m2, ok)
	}
}

func TestFinderNextReturnsPositionOnCorrectLine(t *testing.T) {
	r := rope.FromText("alpha\nbeta gamma\n")
	f := NewFinder(r)

	m, ok := f.Next("gamma", 0)
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Pos.Y != 1 || m.Pos.X != 5 {
		t.Fatalf("expected Position{1,5}, got %+v", m.Pos)
	}
}

func TestFinderPrevFindsBackwardOccurrence(t *testing.T) {
	r := rope.FromText("foo bar foo baz")
	f := NewFinder(r)

	m, ok := f.Prev("foo", 15)
	if !ok || m.CharOffset != 8 {
		t.Fatalf("expected match at 8, got %+v ok=%v", m, ok)
	}
}

func TestFinderEmptyQueryNeverMatches(t *testing.T) {
	r := rope.FromText("anything")
	f := NewFinder(r)
	if _, ok := f.Next("", 0); ok {
		t.Fatalf("expected empty query to never match")
	}
	if _, ok := f.Prev("", 5); ok {
		t.Fatalf("expected empty query to never match")
	}
}

func TestFuzzyFindLinesRanksBufferLines(t *testing.T) {
	r := rope.FromText("func main() {\n\tfmt.Println(\"hi\")\n}\n")
	matches := FuzzyFindLines(r, "Println")
	if len(matches) == 0 {
		t.Fatalf("expected at least one fuzzy match")
	}
	if matches[0].Index != 1 {
		t.Fatalf("expected match on line 1, got %+v", matches[0])
	}
}

func TestFuzzyFindPathsRanksCandidates(t *testing.T) {
	paths := []string{"pkg/buffer/buffer.go", "pkg/view/view.go", "cmd/coreedit/main.go"}
	matches := FuzzyFindPaths("viewgo", paths)
	if len(matches) == 0 || matches[0].Str != "pkg/view/view.go" {
		t.Fatalf("expected pkg/view/view.go to rank first, got %+v", matches)
	}
}
