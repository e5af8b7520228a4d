package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
)

// OSC52 writes via the OSC 52 terminal escape sequence
// ("\x1b]52;c;<base64>\x07"), the terminal-native clipboard path that
// works over SSH where no OS clipboard command is reachable. It has no
// read path: terminals that support OSC52 write do not echo a read
// response back through this same channel in a way the core can consume
// synchronously, so Read always errors.
type OSC52 struct {
	Writer io.Writer
}

func (o OSC52) Write(text string) error {
	if o.Writer == nil {
		return fmt.Errorf("clipboard: osc52 provider has no writer")
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(o.Writer, "\x1b]52;c;%s\x07", encoded)
	return err
}

func (OSC52) Read() (string, error) {
	return "", fmt.Errorf("clipboard: osc52 provider does not support read")
}

// InMemory is the fallback provider used when no OS clipboard command and
// no terminal OSC52 support is available; it simply holds the last
// written string in process memory.
type InMemory struct {
	text string
}

func (m *InMemory) Write(text string) error {
	m.text = text
	return nil
}

func (m *InMemory) Read() (string, error) {
	return m.text, nil
}
