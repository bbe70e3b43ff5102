// Package table provides a bounded, goroutine-safe memoization table:
// the thunk contract per key. The first successful producer run for a
// key is cached; later lookups of that key never run a producer again.
// Errors are not cached, so a failed key retries on its next lookup.
//
// Memory is bounded by a two-generation rotation scheme: once the table
// has stored maxSize entries it flips to its other generation, and
// lookups fall back to the previous generation, so recently used entries
// survive a flip while stale ones age out.
package table

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const numStripes = 16

// Table memoizes values of type V by string key.
type Table[V any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	stripes [numStripes]sync.Mutex
}

// New returns a table that holds at most maxSize entries per generation.
func New[V any](maxSize uint32) *Table[V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Table[V]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

// Force returns the memoized value for key, running produce if the key
// has no cached value yet. Concurrent Force calls for the same key are
// serialized, so at most one producer run happens per key; calls for
// keys on different stripes proceed in parallel. A produce error is
// returned as-is and leaves the key un-cached.
func (t *Table[V]) Force(key string, produce func() (V, error)) (V, error) {
	if v, ok := t.load(key); ok {
		return v, nil
	}

	mu := &t.stripes[xxhash.Sum64String(key)%numStripes]
	mu.Lock()
	defer mu.Unlock()

	// Another Force on this stripe may have filled the key while we
	// waited for the lock.
	if v, ok := t.load(key); ok {
		return v, nil
	}

	v, err := produce()
	if err != nil {
		var zero V
		return zero, err
	}
	t.store(key, v)
	return v, nil
}

// Len reports the number of entries stored in the current generation.
func (t *Table[V]) Len() int {
	return int(t.size.Load())
}

// Forget drops key from both generations. The next Force for the key
// runs its producer again.
func (t *Table[V]) Forget(key string) {
	t.memos[0].Load().Delete(key)
	t.memos[1].Load().Delete(key)
}

func (t *Table[V]) load(key string) (V, bool) {
	head := t.headIdx.Load()
	v, ok := t.memos[head].Load().Load(key)
	if !ok {
		v, ok = t.memos[1-head].Load().Load(key)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

func (t *Table[V]) store(key string, value V) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		// The retired generation becomes the fresh head; the previous
		// head stays readable as the fallback generation.
		head := t.headIdx.Load()
		t.memos[1-head].Store(&sync.Map{})
		t.headIdx.Store(1 - head)
	}
	t.memos[t.headIdx.Load()].Load().Store(key, value)
	t.size.Add(1)
}
