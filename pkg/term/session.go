// Session owns the alternate-screen/mouse-capture lifecycle a TUI
// process wraps its whole run in, the private-mode escape sequences a
// terminal that doesn't understand them just ignores, so no capability
// check gates sending them.

package term

// Session brackets a Terminal's use with the alternate-screen buffer
// and, optionally, mouse-event reporting, undoing exactly what Enter
// did when the program exits.
type Session struct {
	t     Terminal
	mouse bool
}

// NewSession returns a Session over t. mouse enables SGR mouse-event
// reporting (button + coordinate mode) alongside the alternate screen.
func NewSession(t Terminal, mouse bool) *Session {
	return &Session{t: t, mouse: mouse}
}

// Enter switches to the alternate screen buffer and, if configured,
// enables mouse reporting, then returns the terminal's probed
// capabilities so the caller can log or adapt rendering to them.
func (s *Session) Enter() Capabilities {
	seq := "\x1b[?1049h"
	if s.mouse {
		seq += "\x1b[?1000h\x1b[?1006h"
	}
	s.t.Write([]byte(seq))
	return s.t.Capabilities()
}

// Exit reverses Enter: disables mouse reporting (if it was enabled)
// and leaves the alternate screen buffer. Safe to call even if Enter
// was never called or already undone.
func (s *Session) Exit() {
	seq := ""
	if s.mouse {
		seq += "\x1b[?1006l\x1b[?1000l"
	}
	seq += "\x1b[?1049l"
	s.t.Write([]byte(seq))
}
