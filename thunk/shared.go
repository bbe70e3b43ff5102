package thunk

import (
	"fmt"
	"sync"
)

// Shared is the goroutine-safe memoizing handle. Concurrent first
// accesses are gated by a sync.Once, so they agree on a single producer
// run and every observer reads the same cached result.
//
// The gate follows sync.Once semantics throughout: if the producer
// panics, the gate still counts as spent and later Force calls return
// the zero value rather than retrying. Callers who need the retry
// contract use Value or Cell from a single goroutine.
//
// A Shared must not be copied after first use; there is deliberately no
// Clone.
type Shared[R any] struct {
	once sync.Once
	fn   Producer[R]
	val  R
}

// NewShared wraps a producer into a goroutine-safe memoizing handle.
// The producer does not run.
func NewShared[R any](fn Producer[R]) *Shared[R] {
	return &Shared[R]{fn: fn}
}

// Force returns the handle's value, running the producer on the first
// call across all goroutines.
func (s *Shared[R]) Force() R {
	s.once.Do(func() {
		s.val = s.fn()
		s.fn = nil
	})
	return s.val
}

func (s *Shared[R]) String() string {
	return fmt.Sprint(s.Force())
}
