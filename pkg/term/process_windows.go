//go:build windows

// Windows stub for ProcessTerminal resize handling: SetConsoleMode +
// ReadConsoleInput based resize detection is not implemented, so
// coreedit on Windows relies on the next keystroke's Size() call
// picking up a changed window rather than a live resize callback.

package term

func (t *ProcessTerminal) startResizeListener() {
}
