package thunk

// Combine builds a memoizing handle over two others. Construction forces
// neither operand; the first Force of the combined handle forces both
// and applies op, and from then on the combined result is cached. Each
// operand still memoizes on its own, so forcing the combination twice
// runs each underlying producer at most once.
func Combine[A, B, C any](lhs Forcer[A], rhs Forcer[B], op func(A, B) C) *Value[C] {
	return New(func() C {
		return op(lhs.Force(), rhs.Force())
	})
}

// CombineCell is Combine for the specialized family. The combined
// producer is a fresh closure, so the result is a Cell over that
// closure's type.
func CombineCell[F ~func() A, G ~func() B, A, B, C any](
	lhs *Cell[F, A],
	rhs *Cell[G, B],
	op func(A, B) C,
) *Cell[func() C, C] {
	return Wrap(func() C {
		return op(lhs.Force(), rhs.Force())
	})
}

// Addable covers the types the sample Add operator supports.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Add is the sample lifted operator: a memoized sum of two handles.
func Add[T Addable](lhs, rhs Forcer[T]) *Value[T] {
	return Combine(lhs, rhs, func(a, b T) T { return a + b })
}

// Map chains a conversion after a handle. The returned handle memoizes
// on its own, so both the base producer and the conversion run at most
// once.
func Map[R, T any](v Forcer[R], conv func(R) T) *Value[T] {
	return New(func() T {
		return conv(v.Force())
	})
}
