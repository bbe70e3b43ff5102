// Package thunk provides memoizing computation handles: a producer runs
// at most once per handle, and every later observation reads the cached
// result.
//
// A handle starts pending, holding only its producer. The first Force
// runs the producer, caches the result, and drops the producer; from
// then on the handle is done and Force is a plain read. Forcing is
// logically read-only — the public contract is a read even though the
// first call mutates the cell underneath. That interior mutation is
// intentional, not an accident of the implementation.
//
// Two storage strategies mirror package lazy:
//   - Value[R] erases the producer to func() R and memoizes by swapping
//     in a trivial closure over the computed result.
//   - Cell[F, R] keeps the producer's concrete type and stores
//     producer-or-result in a tagged cell, so no wrapping closure is
//     ever allocated for the producer.
//
// A producer that panics does not complete the transition: the handle
// stays pending and the next Force retries. Try carries the same retry
// contract for producers that return errors.
//
// None of Value, Cell and Try are safe for concurrent first use from
// multiple goroutines. That is a deliberate scoping choice, matching
// their single-owner handle model; it keeps the hot path free of
// synchronization. Shared is the opt-in goroutine-safe form.
package thunk
