// Package clipboard implements §5's "Shared resources" clipboard model: a
// process-wide provider interface with three variants (OS-native, OSC52
// escape sequence, in-memory fallback), plus the in-memory last-copied
// Record that lets a paste recover multi-cursor structure even when the OS
// clipboard only carries a flat string. The OS-native half is grounded on
// the teacher's pkg/tui/clipboard (pbcopy/xclip/clip.exe by runtime.GOOS);
// Read and the OSC52/in-memory providers are new, per §2.2's domain-stack
// note that the teacher only implemented the write-only native path.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Provider is a clipboard backend. Read/Write operate on the flat string
// the OS (or terminal) clipboard actually stores.
type Provider interface {
	Write(text string) error
	Read() (string, error)
}

// Native writes through the OS clipboard command (pbcopy/xclip) and reads
// it back (pbpaste/xclip -o), matching the teacher's pkg/tui/clipboard
// command-selection logic, extended with a read path.
type Native struct{}

func (Native) Write(text string) error {
	cmd, args := writeCmd()
	if cmd == "" {
		return fmt.Errorf("clipboard: write not supported on %s", runtime.GOOS)
	}
	c := exec.Command(cmd, args...)
	c.Stdin = strings.NewReader(text)
	return c.Run()
}

func (Native) Read() (string, error) {
	cmd, args := readCmd()
	if cmd == "" {
		return "", fmt.Errorf("clipboard: read not supported on %s", runtime.GOOS)
	}
	out, err := exec.Command(cmd, args...).Output()
	if err != nil {
		return "", fmt.Errorf("clipboard: reading: %w", err)
	}
	return string(out), nil
}

func writeCmd() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "linux":
		return "xclip", []string{"-selection", "clipboard"}
	case "windows":
		return "clip", nil
	default:
		return "", nil
	}
}

func readCmd() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbpaste", nil
	case "linux":
		return "xclip", []string{"-selection", "clipboard", "-o"}
	default:
		return "", nil
	}
}
