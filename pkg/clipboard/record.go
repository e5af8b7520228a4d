package clipboard

import "strings"

// Record is the last-copied clipboard payload, preserving per-cursor
// structure: Parts[i] is the text cut/copied from the i'th cursor (in
// cursor-set order) at the time of the copy. §5 and §9 call this out as
// one of the editor's two pieces of legitimate global mutable state, kept
// here so a later paste with the same cursor count can restore it even
// though the OS/OSC52 clipboard only ever stores the flat Joined() string.
type Record struct {
	Parts []string
}

// Joined returns the flat string form written to the underlying Provider:
// each part separated by a newline, matching how most terminal clipboards
// represent a multi-line yank.
func (r Record) Joined() string {
	return strings.Join(r.Parts, "\n")
}

// Clipboard pairs a Provider (the OS/OSC52/in-memory backend that actually
// stores the flat string) with the last-copied Record (the in-memory
// multi-cursor structure). Copy always updates both; Paste prefers the
// Record when it is still in sync with the provider's current flat
// string, otherwise giving every cursor the same whole flat string.
type Clipboard struct {
	Provider Provider
	last     Record
}

// New returns a Clipboard backed by provider.
func New(provider Provider) *Clipboard {
	return &Clipboard{Provider: provider}
}

// Copy writes parts (one per cursor) to the underlying provider and
// records the structured Record for a later multi-cursor-aware Paste.
func (c *Clipboard) Copy(parts []string) error {
	rec := Record{Parts: append([]string(nil), parts...)}
	c.last = rec
	return c.Provider.Write(rec.Joined())
}

// Paste returns the text each of n cursors should receive. If the
// underlying provider's current content still matches the last recorded
// Record's Joined() text and the part count matches n, the original
// per-cursor parts are returned (no other program has replaced the
// clipboard since this process copied it). Otherwise every
// cursor receives the same flat string read back from the provider.
func (c *Clipboard) Paste(n int) ([]string, error) {
	flat, err := c.Provider.Read()
	if err != nil {
		return nil, err
	}
	if len(c.last.Parts) == n && c.last.Joined() == flat {
		return append([]string(nil), c.last.Parts...), nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = flat
	}
	return out, nil
}
