// Terminal abstraction shared by the real stdout/stdin terminal and the
// in-memory double used by compositor and surface tests.

package term

// Capabilities records the terminal features the compositor's render
// path (cmd/coreedit/render.go) branches on: whether truecolor SGR
// sequences are safe to emit versus falling back to the 256-color
// palette, and whether the synchronized-output bracket
// (\x1b[?2026h/l) is honored rather than just ignored as unknown CSI.
// Neither is queried from the terminal itself (a DECRQM round-trip
// blocks the render loop on a reply that may never come) —
// probeCapabilities (process.go) derives both from environment
// heuristics when NewProcessTerminal is called.
type Capabilities struct {
	TrueColor          bool
	SynchronizedOutput bool
}

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, output writing, resize notifications, and the
// capability set the renderer adapts its output to.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
	Capabilities() Capabilities
}
