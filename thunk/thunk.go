package thunk

import "fmt"

// Producer is a zero-argument computation supplying a value of type R.
// The memoizing handle requires R to be copyable in the ordinary Go
// sense, since the cached value is handed out repeatedly.
type Producer[R any] func() R

// Forcer is anything that can be forced into a value of type R.
type Forcer[R any] interface {
	Force() R
}

// Value is the type-erased memoizing handle. Pending and done phases
// share the one erased field: while pending, fn is the user's producer;
// once done, fn is a trivial closure returning the cached result.
type Value[R any] struct {
	fn Producer[R]
}

// New wraps a producer into a memoizing handle. The producer does not run.
func New[R any](fn Producer[R]) *Value[R] {
	return &Value[R]{fn: fn}
}

// Force returns the handle's value, running the producer on the first
// call only. The swap to the trivial closure happens after the producer
// returns, so a panicking producer leaves the handle pending and a later
// Force retries it.
func (v *Value[R]) Force() R {
	res := v.fn()
	// Re-swapping an already trivial closure is harmless: it returns the
	// same cached result either way.
	v.fn = func() R { return res }
	return res
}

// Clone returns an independent handle. Cloning a pending handle yields
// two handles that each run the producer on their own first Force;
// cloning a done handle yields two handles reading the same cached
// result.
func (v *Value[R]) Clone() *Value[R] {
	cp := *v
	return &cp
}

// String forces the handle and formats the result the way fmt would
// format the bare value. Across any number of renders the producer runs
// at most once.
func (v *Value[R]) String() string {
	return fmt.Sprint(v.Force())
}
