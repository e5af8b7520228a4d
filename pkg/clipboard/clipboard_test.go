package clipboard

import (
	"runtime"
	"strings"
	"testing"
)

func TestNativeCommandSelection(t *testing.T) {
	t.Parallel()

	switch runtime.GOOS {
	case "darwin":
		if cmd, args := writeCmd(); cmd != "pbcopy" || len(args) != 0 {
			t.Errorf("expected pbcopy with no args, got %q %v", cmd, args)
		}
		if cmd, _ := readCmd(); cmd != "pbpaste" {
			t.Errorf("expected pbpaste, got %q", cmd)
		}
	case "linux":
		if cmd, args := writeCmd(); cmd != "xclip" || len(args) != 2 {
			t.Errorf("expected xclip -selection clipboard, got %q %v", cmd, args)
		}
		if cmd, args := readCmd(); cmd != "xclip" || len(args) != 3 {
			t.Errorf("expected xclip -selection clipboard -o, got %q %v", cmd, args)
		}
	default:
		t.Skip("native clipboard command selection only asserted on darwin/linux")
	}
}

func TestOSC52WritesEscapeSequence(t *testing.T) {
	var buf strings.Builder
	p := OSC52{Writer: &buf}
	if err := p.Write("hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;c;") || !strings.HasSuffix(out, "\x07") {
		t.Fatalf("unexpected OSC52 sequence: %q", out)
	}
}

func TestOSC52ReadUnsupported(t *testing.T) {
	if _, err := (OSC52{}).Read(); err == nil {
		t.Fatalf("expected OSC52 Read to error")
	}
}

func TestInMemoryRoundTrip(t *testing.T) {
	m := &InMemory{}
	if err := m.Write("abc"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := m.Read()
	if err != nil || got != "abc" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestClipboardPastePreservesMultiCursorStructure(t *testing.T) {
	mem := &InMemory{}
	c := New(mem)

	if err := c.Copy([]string{"one", "two", "three"}); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	parts, err := c.Paste(3)
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	want := []string{"one", "two", "three"}
	for i, p := range parts {
		if p != want[i] {
			t.Fatalf("part %d: got %q want %q", i, p, want[i])
		}
	}
}

func TestClipboardPasteFallsBackToFlatStringWhenCursorCountChanges(t *testing.T) {
	mem := &InMemory{}
	c := New(mem)
	if err := c.Copy([]string{"one", "two"}); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	// A different number of cursors than were copied: no structure to
	// restore, every cursor gets the flat joined string.
	parts, err := c.Paste(1)
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if len(parts) != 1 || parts[0] != "one\ntwo" {
		t.Fatalf("got %v", parts)
	}
}

func TestClipboardPasteFallsBackWhenExternalCopyChangedContent(t *testing.T) {
	mem := &InMemory{}
	c := New(mem)
	if err := c.Copy([]string{"one", "two"}); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	// Simulate an external process overwriting the clipboard.
	_ = mem.Write("external text")

	parts, err := c.Paste(2)
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if parts[0] != "external text" || parts[1] != "external text" {
		t.Fatalf("got %v", parts)
	}
}
