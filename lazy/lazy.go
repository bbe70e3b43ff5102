package lazy

import "fmt"

// Producer is a zero-argument computation supplying a value of type R.
// The handle owns its producer for the handle's whole lifetime.
type Producer[R any] func() R

// Forcer is anything that can be forced into a value of type R.
// Both families of handles in this module satisfy it.
type Forcer[R any] interface {
	Force() R
}

// Value is the type-erased deferred handle: whatever the producer's
// original shape, it is stored behind the uniform Producer[R] type.
type Value[R any] struct {
	fn Producer[R]
}

// New wraps a producer into a deferred handle. The producer does not run.
func New[R any](fn Producer[R]) Value[R] {
	return Value[R]{fn: fn}
}

// Force runs the producer and returns its result. Every call re-runs the
// producer; side effects repeat once per call.
func (v Value[R]) Force() R {
	return v.fn()
}

// String forces the handle once and formats the result the same way fmt
// would format the bare value.
func (v Value[R]) String() string {
	return fmt.Sprint(v.Force())
}

// Combine builds a handle over two others. The operands are not forced
// here; they are forced, and op applied, each time the returned handle is.
func Combine[A, B, C any](lhs Forcer[A], rhs Forcer[B], op func(A, B) C) Value[C] {
	return New(func() C {
		return op(lhs.Force(), rhs.Force())
	})
}

// Addable covers the types the sample Add operator supports.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Add is the sample lifted operator: a lazy sum of two handles.
func Add[T Addable](lhs, rhs Forcer[T]) Value[T] {
	return Combine(lhs, rhs, func(a, b T) T { return a + b })
}

// Map chains a conversion after a handle, lazily. It stands in for the
// "convertible to everything R converts to" cast chain: the conversion
// point is explicit, but nothing runs until the returned handle is forced.
func Map[R, T any](v Forcer[R], conv func(R) T) Value[T] {
	return New(func() T {
		return conv(v.Force())
	})
}
