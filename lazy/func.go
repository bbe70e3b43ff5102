package lazy

import "fmt"

// Func is the specialized deferred handle: the producer is stored in its
// concrete type F instead of being erased to Producer[R]. A named func
// type or a method value goes in as-is, without a wrapping closure.
type Func[F ~func() R, R any] struct {
	fn F
}

// Wrap builds a specialized handle around fn. The result type is inferred
// from F's signature.
func Wrap[F ~func() R, R any](fn F) Func[F, R] {
	return Func[F, R]{fn: fn}
}

// Force runs the producer. Same contract as Value.Force: every call
// re-runs it.
func (f Func[F, R]) Force() R {
	return f.fn()
}

func (f Func[F, R]) String() string {
	return fmt.Sprint(f.Force())
}

// CombineFunc is Combine for the specialized family. The combined
// producer is a fresh closure, so the result is a Func over that
// closure's type.
func CombineFunc[F ~func() A, G ~func() B, A, B, C any](
	lhs Func[F, A],
	rhs Func[G, B],
	op func(A, B) C,
) Func[func() C, C] {
	return Wrap(func() C {
		return op(lhs.Force(), rhs.Force())
	})
}
