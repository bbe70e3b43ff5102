package thunk_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/thunk_ive_go/thunk"

	"github.com/rickb777/date/v2/timespan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stringSource is a named producer type; Wrap stores it without erasure.
type stringSource func() string

func TestCell_ForcesAtMostOnce(t *testing.T) {
	calls := 0
	var src stringSource = func() string {
		calls++
		return "Result Computed!\n"
	}

	c := thunk.Wrap(src)
	require.Zero(t, calls, "wrapping must not run the producer")

	for i := 0; i < 3; i++ {
		assert.Equal(t, "Result Computed!\n", c.Force())
	}
	assert.Equal(t, 1, calls)
}

func TestCell_CloneSemantics(t *testing.T) {
	calls := 0
	orig := thunk.Wrap(func() int {
		calls++
		return 42
	})

	pending := orig.Clone()
	require.Equal(t, 42, orig.Force())
	require.Equal(t, 42, pending.Force())
	assert.Equal(t, 2, calls, "pending clones evaluate independently")

	done := orig.Clone()
	require.Equal(t, 42, done.Force())
	assert.Equal(t, 2, calls, "done clones carry the cached result")
}

func TestCell_PanicKeepsPendingAlternativeIntact(t *testing.T) {
	calls := 0
	c := thunk.Wrap(func() int {
		calls++
		if calls == 1 {
			panic("not ready yet")
		}
		return 42
	})

	require.PanicsWithValue(t, "not ready yet", func() { c.Force() })

	// The cell must still hold the original producer, not a half-written
	// result.
	require.Equal(t, 42, c.Force())
	require.Equal(t, 42, c.Force())
	assert.Equal(t, 2, calls)
}

func TestCombineCell_LazyAndMemoized(t *testing.T) {
	base := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	lhsCalls, rhsCalls := 0, 0
	morning := thunk.Wrap(func() timespan.TimeSpan {
		lhsCalls++
		return timespan.BetweenTimes(base, base.Add(2*time.Hour))
	})
	evening := thunk.Wrap(func() timespan.TimeSpan {
		rhsCalls++
		return timespan.BetweenTimes(base.Add(6*time.Hour), base.Add(9*time.Hour))
	})

	total := thunk.CombineCell(morning, evening, func(a, b timespan.TimeSpan) time.Duration {
		return a.Duration() + b.Duration()
	})
	require.Zero(t, lhsCalls)
	require.Zero(t, rhsCalls)

	require.Equal(t, 5*time.Hour, total.Force())
	require.Equal(t, 5*time.Hour, total.Force())
	assert.Equal(t, 1, lhsCalls)
	assert.Equal(t, 1, rhsCalls)
}

func TestCell_StringRendersOnce(t *testing.T) {
	calls := 0
	c := thunk.Wrap(func() string {
		calls++
		return "Hello world!\n"
	})

	assert.Equal(t, "Hello world!\n", c.String())
	assert.Equal(t, "Hello world!\n", c.String())
	assert.Equal(t, 1, calls)
}
