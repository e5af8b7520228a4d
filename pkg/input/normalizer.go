package input

import (
	"strings"

	"github.com/arnebach/coreedit/pkg/key"
)

// Normalizer coalesces a burst of bare-character keystrokes (pasted
// content, §4.10) into a single EventKeyBatch, and passes everything else
// through unchanged. It sits in front of the teacher-derived StdinBuffer's
// per-key dispatch (pkg/input.StdinBuffer), consuming the key.Key stream
// it already decodes.
//
// State machine: a batch opens when a bare Char key arrives while another
// event is already queued up behind it (i.e. more bytes were already
// available when this Char was parsed); Enter/Tab append as \n/\t while a
// batch is open; the first non-character key or an idle gap closes the
// batch, and that terminating key is delivered as its own event right
// after the batch.
type Normalizer struct {
	onEvent func(Event)

	batching bool
	batch    strings.Builder
}

// NewNormalizer returns a Normalizer that delivers normalized Events to
// onEvent.
func NewNormalizer(onEvent func(Event)) *Normalizer {
	return &Normalizer{onEvent: onEvent}
}

// HandleKey feeds one decoded key.Key into the normalizer. morePending
// tells the normalizer whether additional bytes are already buffered
// behind this key (the signal that a burst, not a single keystroke, is in
// flight) — StdinBuffer callers pass whether b.buf is non-empty after this
// key was consumed.
func (n *Normalizer) HandleKey(k key.Key, morePending bool) {
	if n.batching {
		if n.appendToBatch(k) {
			if !morePending {
				n.flushBatch()
			}
			return
		}
		n.flushBatch()
		n.emit(Event{Kind: EventKey, Key: k})
		return
	}

	if k.Type == key.KeyRune && morePending {
		n.batching = true
		n.batch.WriteRune(k.Rune)
		return
	}

	n.emit(Event{Kind: EventKey, Key: k})
}

// appendToBatch appends k to the open batch if it is a Char, Enter, or
// Tab, reporting true; it reports false (without mutating the batch) for
// any other key type, signaling the batch must close.
func (n *Normalizer) appendToBatch(k key.Key) bool {
	switch k.Type {
	case key.KeyRune:
		n.batch.WriteRune(k.Rune)
		return true
	case key.KeyEnter:
		n.batch.WriteByte('\n')
		return true
	case key.KeyTab:
		n.batch.WriteByte('\t')
		return true
	default:
		return false
	}
}

// Flush closes any open batch without a subsequent key — used on an idle
// timeout, the other half of "first non-character or timeout breaks the
// batch."
func (n *Normalizer) Flush() {
	if n.batching {
		n.flushBatch()
	}
}

func (n *Normalizer) flushBatch() {
	n.batching = false
	batch := n.batch.String()
	n.batch.Reset()
	n.emit(Event{Kind: EventKeyBatch, Batch: batch})
}

// HandleMouse delivers a decoded MouseEvent, closing any open batch first
// (a mouse event is not a character and always breaks a batch).
func (n *Normalizer) HandleMouse(m MouseEvent) {
	n.Flush()
	n.emit(Event{Kind: EventMouse, Mouse: m})
}

// HandleResize delivers a resize notification, closing any open batch.
func (n *Normalizer) HandleResize(width, height int) {
	n.Flush()
	n.emit(Event{Kind: EventResize, Width: width, Height: height})
}

func (n *Normalizer) emit(e Event) {
	if n.onEvent != nil {
		n.onEvent(e)
	}
}
