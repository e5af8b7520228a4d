package text

import (
	"testing"

	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
)

func TestGraphemesASCII(t *testing.T) {
	got := Graphemes("abc")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestGraphemeIterForwardAndBackward(t *testing.T) {
	r := rope.FromText("Hello 世界!")
	it := NewGraphemeIterAt(r, position.Position{Y: 0, X: 0})
	var forward []string
	for {
		_, g, ok := it.Next()
		if !ok {
			break
		}
		forward = append(forward, g)
	}
	want := []string{"H", "e", "l", "l", "o", " ", "世", "界", "!"}
	if len(forward) != len(want) {
		t.Fatalf("forward = %v, want %v", forward, want)
	}
	for i := range want {
		if forward[i] != want[i] {
			t.Fatalf("forward[%d] = %q, want %q", i, forward[i], want[i])
		}
	}

	back := NewGraphemeIterAt(r, position.Position{Y: 0, X: len(want)})
	var reversed []string
	for {
		_, g, ok := back.Prev()
		if !ok {
			break
		}
		reversed = append(reversed, g)
	}
	if len(reversed) != len(want) {
		t.Fatalf("reversed = %v", reversed)
	}
	for i := range want {
		if reversed[i] != want[len(want)-1-i] {
			t.Fatalf("reversed[%d] = %q", i, reversed[i])
		}
	}
}

func TestGraphemeIterCrossesLines(t *testing.T) {
	r := rope.FromText("ab\ncd")
	it := NewGraphemeIterAt(r, position.Position{Y: 0, X: 1})
	pos, g, ok := it.Next()
	if !ok || g != "b" || pos != (position.Position{Y: 0, X: 1}) {
		t.Fatalf("got %v %q %v", pos, g, ok)
	}
	pos, g, ok = it.Next()
	if !ok || g != "c" || pos != (position.Position{Y: 1, X: 0}) {
		t.Fatalf("got %v %q %v", pos, g, ok)
	}
}
