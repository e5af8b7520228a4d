// Allocation pooling for the render hot path: renderOps
// (cmd/coreedit/render.go) builds a fresh escape-sequence string every
// frame, i.e. on every keystroke, and a pooled strings.Builder avoids
// growing a new backing array each time.

package pool

import (
	"strings"
	"sync"
)

// Pool wraps sync.Pool for a single concrete type, pairing a
// constructor with a reset function so Get always returns a value a
// caller can use without checking for leftover state from the
// previous borrower.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// NewPool returns a Pool whose Get calls newFn to create a value when
// the pool is empty, and whose Put calls resetFn before returning a
// value to the pool.
func NewPool[T any](newFn func() T, resetFn func(T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return newFn() }},
		reset: resetFn,
	}
}

// Get returns a value from the pool, freshly reset.
func (p *Pool[T]) Get() T {
	v := p.pool.Get().(T)
	p.reset(v)
	return v
}

// Put resets v and returns it to the pool.
func (p *Pool[T]) Put(v T) {
	p.reset(v)
	p.pool.Put(v)
}

var stringBuilderPool = NewPool(
	func() *strings.Builder { return new(strings.Builder) },
	func(b *strings.Builder) { b.Reset() },
)

// GetStringBuilder returns a strings.Builder from the pool.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get()
}

// PutStringBuilder returns a strings.Builder to the pool.
func PutStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	stringBuilderPool.Put(sb)
}
