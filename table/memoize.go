package table

import "fmt"

// Key renders an arbitrary value into a table key. Values that know how
// to print themselves are keyed by their String form; everything else
// goes through fmt's default formatting.
func Key(v any) string {
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprint(v)
}

// Memoize wraps a unary pure function in a bounded memo table. keyOf
// maps an argument to its table key (Key gives the default rendering).
// The wrapped function runs pureFn at most once per distinct key.
//
// pureFn must actually be pure: if it depends on time, I/O or mutable
// state, the cached answers are lies.
func Memoize[I, O any](
	pureFn func(I) O,
	keyOf func(I) string,
	maxTableSize uint32,
) func(I) O {
	memo := New[O](maxTableSize)
	return func(i I) O {
		v, _ := memo.Force(keyOf(i), func() (O, error) {
			return pureFn(i), nil
		})
		return v
	}
}
