package compositor

import (
	"github.com/arnebach/coreedit/internal/log"
	"github.com/arnebach/coreedit/pkg/canvas"
)

// tooSmallWidth/tooSmallHeight are the thresholds below which the
// "too small" layer supersedes all others, per §4.9 and §7's
// CompositorInvariantViolation (rendered, never a crash).
const (
	tooSmallWidth  = 10
	tooSmallHeight = 5
)

// Layer wraps a Surface with its private Canvas and resolved placement.
type Layer struct {
	Surface Surface
	Focused bool

	canvas    *canvas.Canvas
	placement Placement
	rect      RectSize
	originY   int
	originX   int
}

// NewLayer wraps s in a fresh Layer with no canvas yet (allocated on first
// Frame once the screen size is known).
func NewLayer(s Surface) *Layer {
	return &Layer{Surface: s}
}

// Compositor holds an ordered (bottom-to-top) stack of Layers and the
// front/back canvas pair that double-buffers terminal output.
type Compositor struct {
	layers []*Layer

	width, height int
	front, back   *canvas.Canvas

	tooSmall Surface // optional surface rendered exclusively when screen is too small
}

// New returns an empty Compositor sized for width x height.
func New(width, height int) *Compositor {
	return &Compositor{
		width:  width,
		height: height,
		front:  canvas.New(width, height),
		back:   canvas.New(width, height),
	}
}

// SetTooSmallSurface registers the surface shown exclusively when the
// screen is smaller than the minimum usable size.
func (c *Compositor) SetTooSmallSurface(s Surface) { c.tooSmall = s }

// PushLayer adds l on top of the stack (highest z-order, rendered last,
// receives input first).
func (c *Compositor) PushLayer(l *Layer) { c.layers = append(c.layers, l) }

// SetFocus marks l as the sole focused layer; all others are unfocused.
// Only a focused, active layer receives routed input (§4.9's
// "focus/active routing").
func (c *Compositor) SetFocus(l *Layer) {
	for _, existing := range c.layers {
		existing.Focused = existing == l
	}
}

// RemoveLayer removes l from the stack if present.
func (c *Compositor) RemoveLayer(l *Layer) {
	for i, existing := range c.layers {
		if existing == l {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

// Resize changes the compositor's screen dimensions; front and back
// canvases are resized together, per §3's Canvas-pair lifecycle, forcing a
// full redraw on the next Frame.
func (c *Compositor) Resize(width, height int) {
	c.width, c.height = width, height
	c.front.Resize(width, height)
	c.back.Resize(width, height)
}

// CursorResult is the resolved cursor position for the frame, in absolute
// screen coordinates, or Visible=false to hide the cursor.
type CursorResult struct {
	Y, X    int
	Visible bool
}

// Frame runs one full compositor cycle per §4.9: resolve cursor, re-layout
// each layer, clear+render the back canvas (or exclusively the too-small
// surface), diff against front, and swap. It returns the DrawOp stream the
// caller must write to the terminal and the resolved cursor.
func (c *Compositor) Frame() ([]canvas.DrawOp, CursorResult) {
	if c.width < tooSmallWidth || c.height < tooSmallHeight {
		return c.frameTooSmall()
	}

	ctx := Context{ScreenWidth: c.width, ScreenHeight: c.height}

	// 1. Resolve cursor: top-down, first active layer with a position wins.
	var cursor CursorResult
	for i := len(c.layers) - 1; i >= 0; i-- {
		l := c.layers[i]
		if !l.Surface.IsActive(ctx) {
			continue
		}
		if p, ok := l.Surface.CursorPosition(ctx); ok {
			abs := Position{Y: l.originY + p.Y, X: l.originX + p.X}
			cursor = CursorResult{Y: abs.Y, X: abs.X, Visible: true}
			ctx.CursorHint = &abs
			break
		}
	}

	// 2. Re-layout each layer (may depend on the cursor hint for AroundCursor).
	for _, l := range c.layers {
		placement, rect := l.Surface.Layout(ctx, RectSize{Width: c.width, Height: c.height})
		l.placement = placement
		l.rect = rect
		l.originY, l.originX = resolveOrigin(placement, rect, c.width, c.height, ctx.CursorHint)
		if l.canvas == nil || l.canvas.Width != rect.Width || l.canvas.Height != rect.Height {
			l.canvas = canvas.New(rect.Width, rect.Height)
		}
	}

	// 3. Clear the back canvas; render bottom-to-top and blit.
	c.back.Clear()
	for _, l := range c.layers {
		l.canvas.Clear()
		l.Surface.Render(ctx, l.canvas)
		c.back.CopyFrom(l.originY, l.originX, l.canvas)
	}

	// 4. Diff vs front; emit draw ops.
	ops := c.back.Diff(c.front)

	// 5. Swap canvases.
	c.front, c.back = c.back, c.front

	return ops, cursor
}

func (c *Compositor) frameTooSmall() ([]canvas.DrawOp, CursorResult) {
	c.back.Resize(c.width, c.height)
	c.back.Clear()
	if c.tooSmall != nil {
		ctx := Context{ScreenWidth: c.width, ScreenHeight: c.height}
		c.tooSmall.Render(ctx, c.back)
	}
	ops := c.back.Diff(c.front)
	c.front, c.back = c.back, c.front
	return ops, CursorResult{Visible: false}
}

func resolveOrigin(p Placement, rect RectSize, screenW, screenH int, cursorHint *Position) (y, x int) {
	switch p.Kind {
	case PlacementCenter:
		y = (screenH - rect.Height) / 2
		x = (screenW - rect.Width) / 2
	case PlacementAroundCursor:
		if cursorHint != nil {
			y, x = cursorHint.Y+1, cursorHint.X
		}
	default:
		y, x = p.Y, p.X
	}
	if y < 0 {
		y = 0
	}
	if x < 0 {
		x = 0
	}
	return y, x
}

// HandleKey routes a key event top-down through the layers that are both
// focused and active until one Consumes it.
func (c *Compositor) HandleKey(key string) InputResult {
	return c.route(func(l *Layer) InputResult { return l.Surface.HandleKey(key) })
}

// HandleKeyBatch routes a coalesced paste batch the same way as HandleKey.
func (c *Compositor) HandleKeyBatch(batch string) InputResult {
	return c.route(func(l *Layer) InputResult { return l.Surface.HandleKeyBatch(batch) })
}

// HandleMouse routes a mouse event the same way.
func (c *Compositor) HandleMouse(y, x int, button string) InputResult {
	return c.route(func(l *Layer) InputResult { return l.Surface.HandleMouse(y, x, button) })
}

func (c *Compositor) route(dispatch func(*Layer) InputResult) InputResult {
	ctx := Context{ScreenWidth: c.width, ScreenHeight: c.height}
	for i := len(c.layers) - 1; i >= 0; i-- {
		l := c.layers[i]
		if !l.Focused || !l.Surface.IsActive(ctx) {
			continue
		}
		if dispatch(l) == Consumed {
			return Consumed
		}
	}
	log.Debug("compositor: input event reached no consuming layer")
	return Ignored
}
