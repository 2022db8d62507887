package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocate_StrictPriority(t *testing.T) {
	var first, second float64
	remaining := allocate(10, []step{
		{
			name:  "first",
			limit: func() float64 { return 6 },
			apply: func(gw float64) { first = gw },
		},
		{
			name:  "second",
			limit: func() float64 { return 100 },
			apply: func(gw float64) { second = gw },
		},
	})
	assert.Equal(t, 6.0, first)
	assert.Equal(t, 4.0, second)
	assert.Zero(t, remaining)
}

func TestAllocate_RemainderWhenCapacityExhausted(t *testing.T) {
	var got float64
	remaining := allocate(10, []step{
		{
			name:  "only",
			limit: func() float64 { return 3 },
			apply: func(gw float64) { got = gw },
		},
	})
	assert.Equal(t, 3.0, got)
	assert.Equal(t, 7.0, remaining)
}

func TestAllocate_SkipsZeroAndNegativeLimits(t *testing.T) {
	applied := false
	var got float64
	remaining := allocate(5, []step{
		{
			name:  "empty",
			limit: func() float64 { return 0 },
			apply: func(float64) { applied = true },
		},
		{
			name:  "negative",
			limit: func() float64 { return -2 },
			apply: func(float64) { applied = true },
		},
		{
			name:  "takes-all",
			limit: func() float64 { return 10 },
			apply: func(gw float64) { got = gw },
		},
	})
	assert.False(t, applied)
	assert.Equal(t, 5.0, got)
	assert.Zero(t, remaining)
}

func TestAllocate_StopsWhenSatisfied(t *testing.T) {
	touched := false
	remaining := allocate(2, []step{
		{
			name:  "big",
			limit: func() float64 { return 5 },
			apply: func(float64) {},
		},
		{
			name:  "untouched",
			limit: func() float64 { touched = true; return 5 },
			apply: func(float64) { touched = true },
		},
	})
	assert.Zero(t, remaining)
	assert.False(t, touched)
}
