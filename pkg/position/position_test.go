package position

import "testing"

func TestLess(t *testing.T) {
	cases := []struct {
		a, b Position
		want bool
	}{
		{Position{0, 0}, Position{0, 1}, true},
		{Position{0, 5}, Position{1, 0}, true},
		{Position{1, 0}, Position{0, 5}, false},
		{Position{2, 3}, Position{2, 3}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func lenOf(lines []string) LineLenFunc {
	return func(y int) int {
		if y < 0 || y >= len(lines) {
			return 0
		}
		return len([]rune(lines[y]))
	}
}

func TestMoveByHorizontalWrap(t *testing.T) {
	lines := []string{"abc", "de"}
	ll := lenOf(lines)
	p := Position{Y: 0, X: 3}
	got := p.MoveBy(ll, len(lines)-1, 0, 0, 0, 1)
	want := Position{Y: 1, X: 0}
	if got != want {
		t.Fatalf("move right past EOL = %v, want %v", got, want)
	}
	p2 := Position{Y: 1, X: 0}
	got2 := p2.MoveBy(ll, len(lines)-1, 0, 0, 1, 0)
	want2 := Position{Y: 0, X: 3}
	if got2 != want2 {
		t.Fatalf("move left at column 0 = %v, want %v", got2, want2)
	}
}

func TestMoveByVerticalClamp(t *testing.T) {
	lines := []string{"abcdef", "xy"}
	ll := lenOf(lines)
	p := Position{Y: 0, X: 5}
	got := p.MoveBy(ll, len(lines)-1, 0, 1, 0, 0)
	want := Position{Y: 1, X: 2}
	if got != want {
		t.Fatalf("move down with clamp = %v, want %v", got, want)
	}
}

func TestPositionAfterEditNoNewline(t *testing.T) {
	got := PositionAfterEdit(Position{Y: 0, X: 2}, "XY")
	want := Position{Y: 0, X: 4}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPositionAfterEditWithNewlines(t *testing.T) {
	got := PositionAfterEdit(Position{Y: 1, X: 0}, "a\nbc\nd")
	want := Position{Y: 3, X: 1}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
