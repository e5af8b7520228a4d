// Package compositor implements §4.9: an ordered stack of Layers, each
// wrapping a Surface and a private Canvas, composed into a back canvas and
// diffed against the front canvas every frame. It generalizes the
// teacher's Container/Overlay pair (pkg/tui/container.go, pkg/tui/overlay.go)
// from string-line composition to cell-grid composition with focus
// routing and per-surface cursor placement, since the spec's DrawOp
// pipeline needs addressable cells, not whole-line string replacement.
package compositor

import (
	"github.com/arnebach/coreedit/pkg/canvas"
)

// InputResult is returned by a Surface's input hooks.
type InputResult int

const (
	Ignored InputResult = iota
	Consumed
)

// PlacementKind enumerates where a Layer's Surface is positioned on screen.
type PlacementKind int

const (
	PlacementFixed PlacementKind = iota
	PlacementCenter
	PlacementAroundCursor
)

// Placement is a Surface's requested position, resolved against the
// compositor's screen size (and, for AroundCursor, the previously
// determined cursor position) during layout.
type Placement struct {
	Kind PlacementKind
	Y, X int // only meaningful for PlacementFixed
}

// RectSize is a Surface's requested rectangle.
type RectSize struct {
	Width, Height int
}

// Context is the per-frame context passed to Surface methods. It is
// intentionally minimal and read-only from the Surface's perspective: a
// Surface mutates its own state via input hooks, never through Context.
type Context struct {
	ScreenWidth, ScreenHeight int
	CursorHint                *Position // previously resolved cursor, for AroundCursor placement
}

// Position is a simple (row,col) pair in screen coordinates, kept
// independent of pkg/position's buffer-relative Position since surfaces
// address the terminal grid, not buffer text.
type Position struct {
	Y, X int
}

// Surface is the contract every compositable UI element implements.
type Surface interface {
	Name() string
	IsActive(ctx Context) bool
	Layout(ctx Context, screen RectSize) (Placement, RectSize)
	CursorPosition(ctx Context) (Position, bool)
	Render(ctx Context, view *canvas.Canvas)

	HandleKey(key string) InputResult
	HandleKeyBatch(batch string) InputResult
	HandleMouse(y, x int, button string) InputResult
}

// BaseSurface provides no-op input hooks so concrete surfaces only need to
// override the ones they actually handle, following the teacher's pattern
// of small focused interfaces (pkg/tui/component.go's optional
// InputHandler/Focusable) rather than forcing every Surface to implement
// every hook from scratch.
type BaseSurface struct{}

func (BaseSurface) HandleKey(string) InputResult      { return Ignored }
func (BaseSurface) HandleKeyBatch(string) InputResult { return Ignored }
func (BaseSurface) HandleMouse(int, int, string) InputResult { return Ignored }
