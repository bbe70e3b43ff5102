// Package lazy provides deferred computation handles that re-evaluate on
// every observation.
//
// A lazy value is a zero-argument producer wrapped in a handle. Nothing
// runs at construction time; forcing the handle runs the producer and
// returns its result. There is no caching here — forcing N times runs
// the producer N times, side effects included. That is the point of this
// package: "run every time it's observed" semantics, as opposed to the
// run-once semantics of package thunk.
//
// Two storage strategies are offered:
//   - Value[R] stores the producer behind the uniform func() R type.
//   - Func[F, R] keeps the producer's concrete type F, so named function
//     types and method values are stored without an extra wrapper.
//
// Handles compose without evaluating: Combine, Add and Map build new
// handles whose producers only run when the final handle is forced.
package lazy
