package input

import "github.com/arnebach/coreedit/pkg/key"

// EventKind enumerates the normalized event variants the core consumes,
// per §4.10.
type EventKind int

const (
	EventKey EventKind = iota
	EventKeyBatch
	EventMouse
	EventResize
)

// MouseButton enumerates the SGR mouse-reporting button codes this editor
// distinguishes.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseRelease
	MouseMove
)

// MouseEvent is a decoded SGR mouse-reporting event (absent from the
// teacher, added per §4.10's note since the teacher's TUI has no mouse
// support at all).
type MouseEvent struct {
	Button MouseButton
	Y, X   int // 0-indexed
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// Event is the normalized event the compositor's input routing consumes.
// Exactly one of the typed fields is meaningful, selected by Kind.
type Event struct {
	Kind  EventKind
	Key   key.Key
	Batch string
	Mouse MouseEvent
	Width, Height int // EventResize
}
