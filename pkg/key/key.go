// ABOUTME: Defines the Key type and ParseKey feeding coreedit's pkg/input normalizer.
// ABOUTME: Handles printable runes, control characters, and delegates escape sequences to legacy/kitty parsers.
//
// The VT100/xterm/kitty wire formats this package decodes are terminal
// properties, not editor properties: an arrow key or a Kitty CSI-u
// sequence means the same thing to any TUI reading the same terminal, so
// the low-level byte layout mirrors the teacher's pkg/tui/key (see
// DESIGN.md). What changed going from a chat agent to an editor is the
// command surface sitting on top of Ctrl+<letter>: the teacher only ever
// needed Ctrl+C/D/G/L/O/R as distinguished KeyTypes for its own shortcuts.
// cmd/coreedit's bufferSurface.handleKey instead dispatches save/undo/
// redo/copy/paste/comment-toggle (Ctrl+S/Z/Y/C/V//) by matching
// Key{Type: KeyRune, Ctrl: true} against the rune, so every Ctrl+<letter>
// below decodes generically instead of through a fixed enum — a dedicated
// KeyType per shortcut would have to grow with every new command binding.
package key

import "unicode/utf8"

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the editor can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character (Ctrl/Alt may also be set)
	KeyEnter                    // Enter / Return
	KeyTab                     // Tab
	KeyBackTab                 // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

// ctrlLetter recovers the lowercase letter a Ctrl+<letter> control byte
// encodes: terminals send Ctrl+A..Ctrl+Z as 0x01..0x1A (the letter's
// 5-bit ASCII value), so adding 0x60 back yields the lowercase letter.
func ctrlLetter(b byte) rune { return rune(b + 0x60) }

// ctrlPunctuation maps the handful of Ctrl+<punctuation> control bytes the
// editor's command set actually binds (Ctrl+/ for comment-toggle) to the
// rune they represent.
var ctrlPunctuation = map[byte]rune{
	0x1f: '/',
}

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single-byte fast path
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	// Escape sequence path
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if r, ok := ctrlPunctuation[b]; ok {
		return Key{Type: KeyRune, Rune: r, Ctrl: true}
	}
	if b >= 0x01 && b <= 0x1a {
		return Key{Type: KeyRune, Rune: ctrlLetter(b), Ctrl: true}
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence delegates to legacy and kitty parsers for ESC-prefixed data.
func parseEscapeSequence(data string) Key {
	// Try Kitty protocol first (future-proofing)
	if k, ok := ParseKittyKey(data); ok {
		return k
	}

	// Try legacy escape sequences
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Lone ESC
	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each non-rune KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:    "Enter",
	KeyTab:      "Tab",
	KeyBackTab:  "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:   "Delete",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyEscape:   "Escape",
	KeyUnknown:  "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyRune {
		return formatRuneKey(k)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatRuneKey builds a display string for a rune key, prefixing
// whichever of Ctrl/Alt are set (Ctrl+Alt+c, not just the first found).
func formatRuneKey(k Key) string {
	s := string(k.Rune)
	if k.Alt {
		s = "Alt+" + s
	}
	if k.Ctrl {
		s = "Ctrl+" + s
	}
	return s
}
