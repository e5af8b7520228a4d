package main

import (
	"os"

	"github.com/arnebach/coreedit/internal/log"
	"github.com/arnebach/coreedit/pkg/buffer"
	"github.com/arnebach/coreedit/pkg/canvas"
	"github.com/arnebach/coreedit/pkg/clipboard"
	"github.com/arnebach/coreedit/pkg/compositor"
	"github.com/arnebach/coreedit/pkg/config"
	"github.com/arnebach/coreedit/pkg/cursor"
	"github.com/arnebach/coreedit/pkg/input"
	"github.com/arnebach/coreedit/pkg/key"
	"github.com/arnebach/coreedit/pkg/position"
	"github.com/arnebach/coreedit/pkg/rope"
	"github.com/arnebach/coreedit/pkg/text"
	"github.com/arnebach/coreedit/pkg/view"
)

// bufferSurface is a compositor.Surface over a single buffer.Buffer: the
// one "document" layer of cmd/coreedit's layer stack. It owns the View
// used to lay out and render that buffer, translating input.Event values
// into buffer/cursor operations. The bottom row is reserved for a status
// line, matching the teacher's tui.go convention of a fixed footer area
// outside the scrollable content.
type bufferSurface struct {
	compositor.BaseSurface

	buf  *buffer.Buffer
	view *view.View
	cfg  config.Config
	clip *clipboard.Clipboard
	path string

	width, height int
	quit          bool

	banner string // transient error banner shown above the status line
}

func newBufferSurface(buf *buffer.Buffer, cfg config.Config, clip *clipboard.Clipboard, path string) *bufferSurface {
	s := &bufferSurface{
		buf:    buf,
		view:   view.New(80, cfg.TabWidth),
		cfg:    cfg,
		clip:   clip,
		path:   path,
		width:  80,
		height: 24,
	}
	s.relayout()
	return s
}

func (s *bufferSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.view.ScreenWidth = w
	s.relayout()
}

func (s *bufferSurface) relayout() {
	s.view.Layout(s.buf.Rope())
	if cursors := s.buf.Cursors(); len(cursors) > 0 {
		main, _ := s.mainCursor()
		s.view.ClampScroll(main.Moving, s.contentRows())
	}
}

func (s *bufferSurface) contentRows() int {
	rows := s.height - 1 - s.bannerRows() // one row reserved for the status line
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (s *bufferSurface) bannerRows() int {
	if s.banner == "" {
		return 0
	}
	return len(text.WrapTextWithAnsi(s.banner, s.width))
}

func (s *bufferSurface) Name() string { return "buffer" }

func (s *bufferSurface) IsActive(compositor.Context) bool { return true }

func (s *bufferSurface) Layout(ctx compositor.Context, screen compositor.RectSize) (compositor.Placement, compositor.RectSize) {
	return compositor.Placement{Kind: compositor.PlacementFixed, Y: 0, X: 0}, screen
}

func (s *bufferSurface) CursorPosition(compositor.Context) (compositor.Position, bool) {
	main, _ := s.mainCursor()
	top := s.bannerRows()
	for i, r := range s.view.VisibleRows(s.contentRows()) {
		if r.LineNo != main.Moving.Y {
			continue
		}
		for col, p := range r.Positions {
			if p == main.Moving {
				return compositor.Position{Y: top + i, X: col}, true
			}
		}
		if main.Moving == r.EndOfRow {
			return compositor.Position{Y: top + i, X: len(r.Positions)}, true
		}
	}
	return compositor.Position{}, false
}

func (s *bufferSurface) mainCursor() (cursor.Cursor, int) {
	cursors := s.buf.Cursors()
	for i, c := range cursors {
		if c.Main {
			return c, i
		}
	}
	return cursors[0], 0
}

func (s *bufferSurface) Render(ctx compositor.Context, c *canvas.Canvas) {
	statusRow := s.height - 1
	top := s.renderBanner(c)
	for i, row := range s.view.VisibleRows(s.contentRows()) {
		x := 0
		for gi, g := range row.Graphemes {
			st := canvas.Style{}
			if gi < len(row.Styles) {
				rs := row.Styles[gi]
				st = canvas.Style{FgColor: rs.FgColor, BgColor: rs.BgColor, Bold: rs.Bold, Underline: rs.Underline, Invert: rs.Invert}
			}
			w := text.VisibleWidth(g)
			if w < 1 {
				w = 1
			}
			c.PutGrapheme(top+i, x, g, w, st)
			x += w
		}
	}
	s.renderStatusLine(c, statusRow)
}

// renderBanner draws the wrapped error banner (if any) in the rows above
// the content area and returns how many rows it consumed, so Render can
// offset the document rows beneath it.
func (s *bufferSurface) renderBanner(c *canvas.Canvas) int {
	if s.banner == "" {
		return 0
	}
	lines := text.WrapTextWithAnsi(s.banner, s.width)
	for i, line := range lines {
		x := 0
		for _, g := range text.Graphemes(text.StripANSI(line)) {
			w := text.VisibleWidth(g)
			if w < 1 {
				w = 1
			}
			c.PutGrapheme(i, x, g, w, canvas.Style{Bold: true, FgColor: "1"})
			x += w
		}
	}
	return len(lines)
}

func (s *bufferSurface) renderStatusLine(c *canvas.Canvas, row int) {
	name := s.path
	if name == "" {
		name = "[scratch]"
	}
	dirty := ""
	if s.buf.Dirty() {
		dirty = "*"
	}
	status := text.TruncateToWidth(name+dirty, s.width)
	x := 0
	for _, g := range text.Graphemes(status) {
		w := text.VisibleWidth(g)
		if w < 1 {
			w = 1
		}
		c.PutGrapheme(row, x, g, w, canvas.Style{Invert: true})
		x += w
	}
	for ; x < s.width; x++ {
		c.PutGrapheme(row, x, " ", 1, canvas.Style{Invert: true})
	}
}

// HandleEvent dispatches a normalized input event to the buffer. It
// returns true when the surface wants the program to exit (Ctrl+Q).
func (s *bufferSurface) HandleEvent(e input.Event) bool {
	switch e.Kind {
	case input.EventKeyBatch:
		s.buf.EditAllCursors(func(cursor.Cursor) string { return e.Batch })
	case input.EventKey:
		s.handleKey(e.Key)
	case input.EventMouse:
		// Mouse support is limited to caret placement on a single cursor;
		// multi-cursor mouse gestures are out of scope for this driver.
		s.placeCaretAt(e.Mouse.Y, e.Mouse.X)
	case input.EventResize:
		s.Resize(e.Width, e.Height)
	}
	s.relayout()
	return s.quit
}

func (s *bufferSurface) handleKey(k key.Key) {
	switch {
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == 'q' || k.Rune == 'Q'):
		s.quit = true
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == 's' || k.Rune == 'S'):
		s.save()
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == 'z' || k.Rune == 'Z'):
		s.buf.Undo()
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
		s.buf.Redo()
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == 'c' || k.Rune == 'C'):
		s.copySelections()
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == 'v' || k.Rune == 'V'):
		s.paste()
	case k.Ctrl && k.Type == key.KeyRune && (k.Rune == '/'):
		s.banner = ""
		s.buf.CommentToggle(lineCommentToken(s.path))
	case k.Type == key.KeyRune:
		s.banner = ""
		s.buf.Insert(string(k.Rune))
	case k.Type == key.KeyEnter:
		s.banner = ""
		s.buf.SmartNewline(string(s.cfg.IndentStyle), s.cfg.IndentSize, buffer.DefaultOpensBlock)
	case k.Type == key.KeyTab:
		s.banner = ""
		s.buf.Indent(string(s.cfg.IndentStyle), s.cfg.IndentSize)
	case k.Type == key.KeyBackTab:
		s.banner = ""
		s.buf.Deindent(s.cfg.IndentSize)
	case k.Type == key.KeyBackspace:
		s.banner = ""
		s.buf.Backspace()
	case k.Type == key.KeyDelete:
		s.banner = ""
		s.buf.Delete()
	case k.Type == key.KeyUp:
		s.moveVertical(-1)
	case k.Type == key.KeyDown:
		s.moveVertical(1)
	case k.Type == key.KeyLeft:
		s.moveHorizontal(-1)
	case k.Type == key.KeyRight:
		s.moveHorizontal(1)
	default:
		log.Debug("coreedit: unhandled key %s", k.String())
	}
}

func (s *bufferSurface) moveHorizontal(dx int) {
	s.view.ClearRememberedColumn()
	left, right := 0, 0
	if dx < 0 {
		left = -dx
	} else {
		right = dx
	}
	s.buf.SetCursors(mapCursors(s.buf.Cursors(), func(c cursor.Cursor) cursor.Cursor {
		p := c.Moving.MoveBy(s.buf.LineLen, s.buf.NumLines(), 0, 0, left, right)
		return c.MoveTo(p)
	}))
}

func (s *bufferSurface) moveVertical(dy int) {
	s.buf.SetCursors(mapCursors(s.buf.Cursors(), func(c cursor.Cursor) cursor.Cursor {
		return c.MoveTo(s.view.MoveVerticalBy(c.Moving, dy))
	}))
}

func (s *bufferSurface) placeCaretAt(y, x int) {
	rows := s.view.VisibleRows(s.contentRows())
	idx := y
	if idx < 0 || idx >= len(rows) {
		return
	}
	r := rows[idx]
	col := x
	if col > len(r.Positions) {
		col = len(r.Positions)
	}
	var p position.Position
	if col < len(r.Positions) {
		p = r.Positions[col]
	} else {
		p = r.EndOfRow
	}
	s.buf.SetCursors([]cursor.Cursor{cursor.NewCaret(p)})
}

// copySelections writes each cursor's selected text to the clipboard,
// preserving per-cursor structure (§5/§9) for a later structure-aware
// Paste.
func (s *bufferSurface) copySelections() {
	cursors := s.buf.Cursors()
	r := s.buf.Rope()
	parts := make([]string, len(cursors))
	for i, c := range cursors {
		parts[i] = selectedText(r, c.Selection())
	}
	if err := s.clip.Copy(parts); err != nil {
		log.Warn("coreedit: copy: %v", err)
		s.banner = "copy failed: " + err.Error()
		return
	}
	s.banner = ""
}

func (s *bufferSurface) paste() {
	cursors := s.buf.Cursors()
	parts, err := s.clip.Paste(len(cursors))
	if err != nil {
		log.Warn("coreedit: paste: %v", err)
		s.banner = "paste failed: " + err.Error()
		return
	}
	s.banner = ""
	i := 0
	s.buf.EditAllCursors(func(cursor.Cursor) string {
		// EditAllCursors iterates right-to-left; parts are assigned by
		// cursor-set order, so index from the end in lockstep.
		idx := len(parts) - 1 - i
		i++
		if idx < 0 || idx >= len(parts) {
			return ""
		}
		return parts[idx]
	})
}

func selectedText(r rope.Rope, sel position.Range) string {
	front, back := sel.Front(), sel.Back()
	from := r.LineToChar(front.Y) + front.X
	to := r.LineToChar(back.Y) + back.X
	return r.Slice(from, to)
}

func (s *bufferSurface) save() {
	if s.path == "" {
		s.banner = "nothing to save: buffer has no file path"
		return
	}
	f, err := os.Create(s.path)
	if err != nil {
		log.Warn("coreedit: saving %s: %v", s.path, err)
		s.banner = "save failed: " + err.Error()
		return
	}
	defer f.Close()
	if _, err := s.buf.Rope().WriteTo(f); err != nil {
		log.Warn("coreedit: writing %s: %v", s.path, err)
		s.banner = "save failed: " + err.Error()
		return
	}
	s.buf.MarkClean()
	s.banner = ""
}

func mapCursors(in []cursor.Cursor, f func(cursor.Cursor) cursor.Cursor) []cursor.Cursor {
	out := make([]cursor.Cursor, len(in))
	for i, c := range in {
		out[i] = f(c)
	}
	return out
}

// lineCommentToken guesses a line-comment token from the file extension;
// a best-effort default for the demo driver, not a language-detection
// subsystem.
func lineCommentToken(path string) string {
	for _, ext := range []string{".py", ".sh", ".rb", ".yaml", ".yml"} {
		if hasSuffix(path, ext) {
			return "#"
		}
	}
	return "//"
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

type tooSmallSurface struct {
	compositor.BaseSurface
}

func (tooSmallSurface) Name() string                    { return "too-small" }
func (tooSmallSurface) IsActive(compositor.Context) bool { return true }
func (tooSmallSurface) Layout(ctx compositor.Context, screen compositor.RectSize) (compositor.Placement, compositor.RectSize) {
	return compositor.Placement{}, screen
}
func (tooSmallSurface) CursorPosition(compositor.Context) (compositor.Position, bool) {
	return compositor.Position{}, false
}
func (tooSmallSurface) Render(ctx compositor.Context, c *canvas.Canvas) {
	msg := "window too small"
	for i, r := range []rune(msg) {
		if i >= c.Width {
			break
		}
		c.PutGrapheme(0, i, string(r), 1, canvas.Style{})
	}
}
