package thunk

// Try is the memoizing handle for fallible producers. Success transitions
// the handle exactly like Value; failure does not transition at all — the
// error is returned, nothing is cached, and the next Force runs the
// producer again. There is no poisoned state.
type Try[R any] struct {
	fn   func() (R, error)
	val  R
	done bool
}

// NewTry wraps a fallible producer into a memoizing handle. The producer
// does not run.
func NewTry[R any](fn func() (R, error)) *Try[R] {
	return &Try[R]{fn: fn}
}

// Force returns the cached value, or runs the producer if there is none
// yet. Only a nil-error run is cached.
func (t *Try[R]) Force() (R, error) {
	if t.done {
		return t.val, nil
	}
	res, err := t.fn()
	if err != nil {
		var zero R
		return zero, err
	}
	t.val = res
	t.fn = nil
	t.done = true
	return res, nil
}

// Clone returns an independent handle; see Value.Clone.
func (t *Try[R]) Clone() *Try[R] {
	cp := *t
	return &cp
}
