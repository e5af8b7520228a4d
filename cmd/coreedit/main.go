// Command coreedit is the minimal end-to-end driver for the core editing
// engine in pkg/buffer, pkg/view, pkg/canvas, pkg/compositor, pkg/input,
// and pkg/term. It is not a full editor UI (no LSP, no command palette
// rendering, no split panes) — it exists to exercise the pipeline the
// spec describes: terminal raw mode, byte decoding, paste-burst
// normalization, multi-cursor editing, soft-wrap layout, and diffed
// terminal output, wired together the way the teacher's cmd/pi-go/main.go
// wires its own TUI stack.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/arnebach/coreedit/internal/log"
	"github.com/arnebach/coreedit/pkg/buffer"
	"github.com/arnebach/coreedit/pkg/clipboard"
	"github.com/arnebach/coreedit/pkg/compositor"
	"github.com/arnebach/coreedit/pkg/config"
	"github.com/arnebach/coreedit/pkg/input"
	"github.com/arnebach/coreedit/pkg/key"
	"github.com/arnebach/coreedit/pkg/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "coreedit:", err)
		os.Exit(1)
	}
}

func run() error {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	buf, err := openBuffer(path)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if text := buf.Text(); text != "" {
		style, size := config.DetectIndent(text)
		cfg.IndentStyle, cfg.IndentSize = style, size
	}

	t := term.NewProcessTerminal()
	if err := t.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer t.ExitRawMode()
	term.RestoreOnPanic(t)

	sess := term.NewSession(t, true)
	caps := sess.Enter()
	defer sess.Exit()
	log.Info("coreedit: terminal capabilities truecolor=%v sync_output=%v", caps.TrueColor, caps.SynchronizedOutput)

	width, height, err := t.Size()
	if err != nil {
		width, height = 80, 24
	}

	clip := clipboard.New(nativeOrFallback())

	stopBackup := startBackupSaver(buf, path, time.Duration(cfg.BackupIdleTimeoutSeconds)*time.Second)
	defer stopBackup()

	surface := newBufferSurface(buf, cfg, clip, path)
	comp := compositor.New(width, height)
	layer := compositor.NewLayer(surface)
	comp.PushLayer(layer)
	comp.SetFocus(layer)
	comp.SetTooSmallSurface(tooSmallSurface{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	draw(t, comp)

	var norm *input.Normalizer
	norm = input.NewNormalizer(func(e input.Event) {
		if e.Kind == input.EventResize {
			comp.Resize(e.Width, e.Height)
		}
		quit := surface.HandleEvent(e)
		draw(t, comp)
		if quit {
			cancel()
		}
	})

	t.OnResize(func(w, h int) {
		norm.HandleResize(w, h)
	})

	stdin := input.NewStdinBuffer(os.Stdin, func(k key.Key, morePending bool) {
		norm.HandleKey(k, morePending)
	})
	stdin.Start(ctx)
	norm.Flush()

	return nil
}

func openBuffer(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return buffer.New(), nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return buffer.FromReader(f)
}

func nativeOrFallback() clipboard.Provider {
	n := clipboard.Native{}
	if _, err := n.Read(); err != nil {
		mem := &clipboard.InMemory{}
		return mem
	}
	return n
}

// draw runs one compositor frame and writes the resulting DrawOps plus
// cursor positioning to the terminal, logging (never failing) on a short
// write, matching §7's OutOfBoundsDraw "log, don't crash" posture.
func draw(t term.Terminal, comp *compositor.Compositor) {
	ops, cur := comp.Frame()
	out := renderOps(ops, cur)
	if _, err := t.Write([]byte(out)); err != nil {
		log.Warn("coreedit: writing frame: %v", err)
	}
}
