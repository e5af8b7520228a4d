package changefeed

import "sync/atomic"

// VersionCounter hands out the monotonically increasing version numbers the
// edit engine tags every committed edit with.
type VersionCounter struct {
	n atomic.Int64
}

// Next returns the next version number, starting at 1.
func (v *VersionCounter) Next() int64 {
	return v.n.Add(1)
}

// Versioned wraps a subscriber payload (a Change record, a rope snapshot)
// with the version it was published at.
type Versioned[T any] struct {
	Version int64
	Value   T
}

// LatestOnly wraps handler so that, given events arriving out of order, it
// only invokes handler on the highest version seen so far; earlier-tagged
// events are discarded as stale. Not safe for concurrent Publish calls on
// the same LatestOnly wrapper without external synchronization, matching
// the single-threaded-main-loop-integrates-results model.
func LatestOnly[T any](handler Handler[Versioned[T]]) Handler[Versioned[T]] {
	var highest int64 = -1
	return func(v Versioned[T]) {
		if v.Version < highest {
			return
		}
		highest = v.Version
		handler(v)
	}
}
