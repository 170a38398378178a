package control

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFirst(t *testing.T) {
	testCases := map[string]struct {
		r     Range
		first int
	}{
		"AlignedStart":   {Range{Start: 4000, Stop: 10000, Step: 1000}, 5000},
		"UnalignedStart": {Range{Start: 4500, Stop: 10000, Step: 1000}, 5000},
		"ZeroStart":      {Range{Start: 0, Stop: 256, Step: 1}, 1},
		"NegativeStart":  {Range{Start: -5, Stop: 10, Step: 2}, -4},
		"NegativeAlign":  {Range{Start: -64, Stop: 64, Step: 32}, -32},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.first, c.r.First())
			assert.Greater(t, c.r.First(), c.r.Start)
		})
	}
}

func TestRangeValues(t *testing.T) {
	r := Range{Start: 4000, Stop: 10000, Step: 1000}
	assert.Equal(t, []int{5000, 6000, 7000, 8000, 9000}, r.Values())
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, "range(5000, 10000, 1000)", r.String())

	r = Range{Start: -5, Stop: 3, Step: 2}
	assert.Equal(t, []int{-4, -2, 0, 2}, r.Values())

	r = Range{Start: 0, Stop: 10, Step: 3}
	assert.Equal(t, []int{3, 6, 9}, r.Values())
}

func TestRangeEmpty(t *testing.T) {
	r := Range{Start: 10, Stop: 11, Step: 1}
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Values())
	assert.False(t, r.Contains(10))
	assert.False(t, r.Contains(11))
}

func TestRangeInvalidStep(t *testing.T) {
	for _, step := range []int{0, -1} {
		r := Range{Start: 0, Stop: 10, Step: step}
		assert.True(t, errors.Is(r.Validate(), ErrInvalidStep))
		assert.Equal(t, 0, r.Len())
		assert.False(t, r.Contains(0))
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: 4000, Stop: 10000, Step: 1000}
	for _, v := range r.Values() {
		assert.True(t, r.Contains(v), "%d", v)
	}
	for _, v := range []int{4000, 4500, 5001, 10000, 11000, 0, -1000} {
		assert.False(t, r.Contains(v), "%d", v)
	}
}

func TestRangeAt(t *testing.T) {
	r := Range{Start: 0, Stop: 100000000, Step: 1}
	v, err := r.At(99999998)
	require.NoError(t, err)
	assert.Equal(t, 99999999, v)

	_, err = r.At(99999999)
	assert.True(t, errors.Is(err, ErrValueOutOfRange))
	_, err = r.At(-1)
	assert.True(t, errors.Is(err, ErrValueOutOfRange))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(5, 2))
	assert.Equal(t, -3, floorDiv(-5, 2))
	assert.Equal(t, -2, floorDiv(-4, 2))
	assert.Equal(t, 0, floorDiv(0, 7))
}
