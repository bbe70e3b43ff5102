package thunk

import "fmt"

// cellState discriminates the two alternatives a Cell may hold.
type cellState uint8

const (
	cellPending cellState = iota // fn holds the producer, val is junk
	cellDone                     // val holds the result, fn is zeroed
)

// Cell is the specialized memoizing handle. Unlike Value, which can
// always replace one erased func() R with another, a cell preserves the
// producer's concrete type F — and since a trivial closure over the
// result would be a different type than F, the done phase needs its own
// alternative. Hence the tagged producer-or-result storage.
type Cell[F ~func() R, R any] struct {
	state cellState
	fn    F
	val   R
}

// Wrap builds a specialized memoizing handle around fn. The producer
// does not run.
func Wrap[F ~func() R, R any](fn F) *Cell[F, R] {
	return &Cell[F, R]{fn: fn}
}

// Force returns the cell's value, running the producer on the first call
// only. The transition is exception-safe: tag, result and producer slots
// are only touched after the producer returns, so a panic leaves the
// cell pending with its producer intact and a later Force retries.
func (c *Cell[F, R]) Force() R {
	switch c.state {
	case cellDone:
		return c.val
	case cellPending:
		res := c.fn()
		c.val = res
		c.fn = nil // release the producer and whatever it captured
		c.state = cellDone
		return res
	default:
		panic(fmt.Sprintf("thunk: cell in impossible state %d", c.state))
	}
}

// Clone returns an independent cell; see Value.Clone for the pending
// versus done semantics.
func (c *Cell[F, R]) Clone() *Cell[F, R] {
	cp := *c
	return &cp
}

func (c *Cell[F, R]) String() string {
	return fmt.Sprint(c.Force())
}
