// Package trace decorates computation handles with structured evaluation
// logs. The core handles in lazy and thunk never log on their own; when
// evaluation timing or ordering needs to be visible, wrap the handle
// here instead of threading a logger through producers.
package trace

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Forcer is anything that can be forced into a value of type R.
type Forcer[R any] interface {
	Force() R
}

// Value wraps a Forcer and logs each observation at debug level. Every
// wrapper carries its own handle id so interleaved evaluations of
// same-named handles stay distinguishable in the log stream.
//
// Whether the producer runs once or per observation is the inner
// handle's business; the wrapper logs every Force either way, which is
// exactly what makes memoization visible (first Force slow, rest cheap).
type Value[R any] struct {
	handleID string
	name     string
	logger   *zap.Logger
	inner    Forcer[R]
}

// New wraps inner with evaluation logging under the given name.
func New[R any](logger *zap.Logger, name string, inner Forcer[R]) *Value[R] {
	return &Value[R]{
		handleID: uuid.NewString(),
		name:     name,
		logger:   logger,
		inner:    inner,
	}
}

// Force forces the inner handle, logging entry and exit with the elapsed
// wall time.
func (v *Value[R]) Force() R {
	v.logger.Debug("forcing handle",
		zap.String("handleId", v.handleID),
		zap.String("name", v.name),
	)
	start := time.Now()
	res := v.inner.Force()
	v.logger.Debug("handle forced",
		zap.String("handleId", v.handleID),
		zap.String("name", v.name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res
}

// String forces the wrapper (logging included) and formats the result
// the way fmt would format the bare value.
func (v *Value[R]) String() string {
	return fmt.Sprint(v.Force())
}
