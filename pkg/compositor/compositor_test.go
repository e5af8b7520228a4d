package compositor

import (
	"testing"

	"github.com/arnebach/coreedit/pkg/canvas"
)

type fakeSurface struct {
	BaseSurface
	name      string
	active    bool
	rect      RectSize
	placement Placement
	cursor    *Position
	fill      string
	consumeKey bool
}

func (f *fakeSurface) Name() string                                  { return f.name }
func (f *fakeSurface) IsActive(Context) bool                         { return f.active }
func (f *fakeSurface) Layout(Context, RectSize) (Placement, RectSize) { return f.placement, f.rect }
func (f *fakeSurface) CursorPosition(Context) (Position, bool) {
	if f.cursor == nil {
		return Position{}, false
	}
	return *f.cursor, true
}
func (f *fakeSurface) Render(_ Context, v *canvas.Canvas) {
	if f.fill == "" {
		return
	}
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			v.PutGrapheme(y, x, f.fill, 1, canvas.Style{})
		}
	}
}
func (f *fakeSurface) HandleKey(string) InputResult {
	if f.consumeKey {
		return Consumed
	}
	return Ignored
}

func TestFrameProducesOpsOnFirstRender(t *testing.T) {
	c := New(20, 10)
	l := NewLayer(&fakeSurface{name: "editor", active: true, rect: RectSize{Width: 20, Height: 10}, fill: "x"})
	c.PushLayer(l)

	ops, _ := c.Frame()
	if len(ops) == 0 {
		t.Fatalf("expected draw ops on first frame")
	}

	ops2, _ := c.Frame()
	if len(ops2) != 0 {
		t.Fatalf("expected no ops on unchanged second frame, got %d", len(ops2))
	}
}

func TestCursorResolvedTopDown(t *testing.T) {
	c := New(20, 10)
	bottom := NewLayer(&fakeSurface{name: "bottom", active: true, rect: RectSize{Width: 20, Height: 10}})
	top := NewLayer(&fakeSurface{name: "top", active: true, rect: RectSize{Width: 20, Height: 10}, cursor: &Position{Y: 2, X: 3}})
	c.PushLayer(bottom)
	c.PushLayer(top)

	_, cursor := c.Frame()
	if !cursor.Visible || cursor.Y != 2 || cursor.X != 3 {
		t.Fatalf("expected top layer's cursor to win, got %+v", cursor)
	}
}

func TestTooSmallSupersedesOthers(t *testing.T) {
	c := New(5, 3)
	c.SetTooSmallSurface(&fakeSurface{name: "tiny", fill: "!"})
	c.PushLayer(NewLayer(&fakeSurface{name: "normal", active: true, rect: RectSize{Width: 5, Height: 3}, fill: "x"}))

	ops, cursor := c.Frame()
	if cursor.Visible {
		t.Fatalf("expected cursor hidden on too-small screen")
	}
	found := false
	for _, op := range ops {
		if op.Kind == canvas.OpGrapheme && op.Chars == "!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected too-small surface's content in draw ops")
	}
}

func TestInputRoutesTopDownUntilConsumed(t *testing.T) {
	c := New(20, 10)
	bottom := &fakeSurface{name: "bottom", active: true, rect: RectSize{Width: 20, Height: 10}, consumeKey: true}
	top := &fakeSurface{name: "top", active: true, rect: RectSize{Width: 20, Height: 10}, consumeKey: false}
	bl := NewLayer(bottom)
	tl := NewLayer(top)
	c.PushLayer(bl)
	c.PushLayer(tl)
	c.SetFocus(bl)
	c.SetFocus(tl) // only the most recent SetFocus call's target is focused

	if got := c.HandleKey("a"); got != Ignored {
		t.Fatalf("expected Ignored since only unfocused bottom consumes, got %v", got)
	}

	c.SetFocus(bl)
	if got := c.HandleKey("a"); got != Consumed {
		t.Fatalf("expected bottom layer to consume once focused, got %v", got)
	}
}
