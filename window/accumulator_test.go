package window_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/bunkerlabs/bunkerstats/window"
)

func TestAccumulator_TracksTrailingWindow(t *testing.T) {
	xs := randomSeries(60, 111)
	const w = 8

	acc := window.NewAccumulator(w)
	for i, x := range xs {
		acc.Push(x)
		if i < w-1 {
			continue
		}
		win := xs[i-w+1 : i+1]
		assert.Equal(t, w, acc.Count())
		assert.Equal(t, x, acc.Last())
		assert.InDelta(t, stat.Mean(win, nil), acc.Mean(), 1e-9, "i=%d", i)
		assert.InDelta(t, stat.Variance(win, nil), acc.Variance(), 1e-7, "i=%d", i)
	}
}

func TestAccumulator_PartialWindow(t *testing.T) {
	acc := window.NewAccumulator(5)
	assert.Zero(t, acc.Count())
	assert.True(t, math.IsNaN(acc.Mean()))
	assert.True(t, math.IsNaN(acc.Last()))

	acc.Push(10)
	assert.Equal(t, 1, acc.Count())
	assert.Equal(t, 10.0, acc.Mean())
	assert.True(t, math.IsNaN(acc.Variance()), "one value has no sample variance")

	acc.Push(14)
	assert.Equal(t, 12.0, acc.Mean())
	assert.InDelta(t, 8.0, acc.Variance(), 1e-12)
}

func TestAccumulator_NaNOccupiesSlotButNotSums(t *testing.T) {
	acc := window.NewAccumulator(3)
	acc.Push(1)
	acc.Push(math.NaN())
	acc.Push(3)

	assert.Equal(t, 3, acc.Count())
	assert.Equal(t, 2, acc.Valid())
	assert.InDelta(t, 2.0, acc.Mean(), 1e-12)

	// Evicting the NaN restores a full window of valid values.
	acc.Push(5)
	acc.Push(7)
	assert.Equal(t, 3, acc.Valid())
	assert.InDelta(t, 5.0, acc.Mean(), 1e-12)
}

func TestNewAccumulator_ClampsCapacity(t *testing.T) {
	acc := window.NewAccumulator(0)
	acc.Push(2)
	assert.Equal(t, 1, acc.Count())
	assert.Equal(t, 2.0, acc.Mean())
}
