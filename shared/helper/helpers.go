package helper

import (
	"fmt"
)

var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retry runs fn until it succeeds or maxAttempts runs have failed. The
// last failure is wrapped into the returned error.
func Retry(maxAttempts int, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, attempt, err)
		}
	}
}
