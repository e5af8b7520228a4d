// Pub/sub backbone for the buffer's changefeed (pkg/buffer.Buffer
// publishes a Change record per committed edit) and anything else in
// coreedit that wants a decoupled fan-out to multiple subscribers
// without each publisher tracking its own subscriber list —
// VersionedBus below composes this with a VersionCounter to get the
// bus pkg/buffer actually uses.

package changefeed

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[int]Handler[T]
	nextID   int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{
		handlers: make(map[int]Handler[T]),
	}
}

// Subscribe registers a handler and returns an unsubscribe function.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Publish sends an event to all registered handlers.
// Handlers are called synchronously in arbitrary order.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	// Snapshot handlers to avoid holding lock during callbacks
	snapshot := make([]Handler[T], 0, len(b.handlers))
	for _, h := range b.handlers {
		snapshot = append(snapshot, h)
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// VersionedBus composes a Bus with a VersionCounter so callers publish
// bare values and subscribers receive them wrapped with the version
// they were published at. pkg/buffer.Buffer is the sole owner of one
// of these: every committed Change gets tagged here rather than at
// each call site, so the version sequence reflects commit order
// exactly once, not once per place a Change happens to be built.
type VersionedBus[T any] struct {
	bus     *Bus[Versioned[T]]
	counter VersionCounter
}

// NewVersioned returns an empty VersionedBus.
func NewVersioned[T any]() *VersionedBus[T] {
	return &VersionedBus[T]{bus: New[Versioned[T]]()}
}

// Subscribe registers a handler for versioned values and returns an
// unsubscribe function.
func (vb *VersionedBus[T]) Subscribe(handler Handler[Versioned[T]]) func() {
	return vb.bus.Subscribe(handler)
}

// Publish tags value with the next version number and delivers it to
// all subscribers, returning the assigned version.
func (vb *VersionedBus[T]) Publish(value T) int64 {
	version := vb.counter.Next()
	vb.bus.Publish(Versioned[T]{Version: version, Value: value})
	return version
}

// Count returns the number of registered handlers.
func (vb *VersionedBus[T]) Count() int {
	return vb.bus.Count()
}
