//go:build unix

// Unix SIGWINCH handling for ProcessTerminal resize notifications.

package term

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// resizeDebounce coalesces the burst of SIGWINCH a terminal emulator
// delivers over the course of one drag-to-resize gesture (one signal
// per intermediate size, not just the final one) into a single
// callback firing after the burst settles, so the compositor reflows
// and repaints once per resize instead of once per intermediate frame.
const resizeDebounce = 30 * time.Millisecond

// startResizeListener sets up a SIGWINCH handler that debounces and
// calls the resize callback with the new terminal dimensions.
func (t *ProcessTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	var mu sync.Mutex
	var timer *time.Timer

	go func() {
		for range sigCh {
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(resizeDebounce, t.deliverResize)
			mu.Unlock()
		}
	}()
}

// deliverResize reads the current size and invokes the registered
// resize callback, if any.
func (t *ProcessTerminal) deliverResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()

	if fn == nil {
		return
	}

	w, h, err := t.Size()
	if err != nil {
		return
	}
	fn(w, h)
}
