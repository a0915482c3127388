package transforms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunkerlabs/bunkerstats/transforms"
)

func assertSeries(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d should be NaN, got %v", i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-12, "index %d", i)
	}
}

func TestDiff_Scenario(t *testing.T) {
	got := transforms.Diff([]float64{10, 20, 15, 30}, 1)
	assertSeries(t, []float64{math.NaN(), 10, -5, 15}, got)
}

func TestDiff_LargerPeriod(t *testing.T) {
	got := transforms.Diff([]float64{1, 2, 4, 8}, 2)
	assertSeries(t, []float64{math.NaN(), math.NaN(), 3, 6}, got)
}

func TestDiff_NegativePeriodLooksForward(t *testing.T) {
	got := transforms.Diff([]float64{10, 20, 15, 30}, -1)
	assertSeries(t, []float64{-10, 5, -15, math.NaN()}, got)
}

func TestDiff_ZeroPeriodYieldsEmpty(t *testing.T) {
	assert.Empty(t, transforms.Diff([]float64{1, 2, 3}, 0))
	assert.Empty(t, transforms.Diff(nil, 1))
}

func TestPctChange(t *testing.T) {
	got := transforms.PctChange([]float64{10, 20, 15, 30}, 1)
	assertSeries(t, []float64{math.NaN(), 1, -0.25, 1}, got)
}

func TestPctChange_ZeroBaseIsNaN(t *testing.T) {
	got := transforms.PctChange([]float64{0, 5, 10}, 1)
	assertSeries(t, []float64{math.NaN(), math.NaN(), 1}, got)
}

func TestPctChange_NegativePeriodMatchesDiffConvention(t *testing.T) {
	xs := []float64{10, 20, 15, 30}
	got := transforms.PctChange(xs, -1)
	assertSeries(t, []float64{-0.5, 20.0/15.0 - 1, -0.5, math.NaN()}, got)
}

func TestCumSum(t *testing.T) {
	got := transforms.CumSum([]float64{1, 2, 3, 4})
	assert.InDeltaSlice(t, []float64{1, 3, 6, 10}, got, 1e-12)
	assert.Empty(t, transforms.CumSum(nil))
}

func TestCumMean(t *testing.T) {
	got := transforms.CumMean([]float64{2, 4, 6})
	assert.InDeltaSlice(t, []float64{2, 3, 4}, got, 1e-12)
}

func TestSignMask(t *testing.T) {
	got := transforms.SignMask([]float64{-3, 0, 2.5, -0.1, math.NaN()})
	assert.Equal(t, []int8{-1, 0, 1, -1, 0}, got)
}

func TestDemean(t *testing.T) {
	got := transforms.Demean([]float64{1, 2, 3})
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, got, 1e-12)

	sum := 0.0
	for _, v := range got {
		sum += v
	}
	assert.InDelta(t, 0, sum, 1e-12, "demeaned series must sum to zero")
}

func TestDemeanWithSigns(t *testing.T) {
	resid, signs := transforms.DemeanWithSigns([]float64{1, 2, 3, 6})

	require.Len(t, resid, 4)
	assert.Equal(t, []int8{-1, -1, 0, 1}, signs)
}
