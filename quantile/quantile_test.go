package quantile_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunkerlabs/bunkerstats/quantile"
)

func TestQuantile_Endpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xs := make([]float64, 101)
	for i := range xs {
		xs[i] = rng.Float64()*200 - 100
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	assert.Equal(t, sorted[0], quantile.Quantile(xs, 0.0), "q=0 must be the minimum")
	assert.Equal(t, sorted[len(sorted)-1], quantile.Quantile(xs, 1.0), "q=1 must be the maximum")
	assert.Equal(t, sorted[0], quantile.Quantile(xs, -0.5), "q<0 clamps to the minimum")
	assert.Equal(t, sorted[len(sorted)-1], quantile.Quantile(xs, 1.5), "q>1 clamps to the maximum")
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	// position 0.5*(4-1) = 1.5, halfway between 2 and 3
	assert.InDelta(t, 2.5, quantile.Quantile(xs, 0.5), 1e-12)
	// position 0.25*3 = 0.75, 1*(0.25) + 2*(0.75)
	assert.InDelta(t, 1.75, quantile.Quantile(xs, 0.25), 1e-12)
}

func TestQuantile_Empty(t *testing.T) {
	assert.True(t, math.IsNaN(quantile.Quantile(nil, 0.5)))
}

func TestQuantile_DoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	quantile.Quantile(xs, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestMedian_EqualsHalfQuantile(t *testing.T) {
	odd := []float64{9, 1, 5, 3, 7}
	even := []float64{4, 1, 3, 2}

	assert.Equal(t, quantile.Quantile(odd, 0.5), quantile.Median(odd))
	assert.Equal(t, quantile.Quantile(even, 0.5), quantile.Median(even))
	assert.InDelta(t, 5, quantile.Median(odd), 1e-12)
	assert.InDelta(t, 2.5, quantile.Median(even), 1e-12)
}

func TestIQR(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 100}

	q1, q3, spread := quantile.IQR(xs)
	assert.InDelta(t, 2, q1, 1e-12)
	assert.InDelta(t, 4, q3, 1e-12)
	assert.InDelta(t, 2, spread, 1e-12)
}

func TestMAD(t *testing.T) {
	// median 3, absolute deviations {2,1,0,1,2}, median deviation 1
	assert.InDelta(t, 1, quantile.MAD([]float64{1, 2, 3, 4, 5}), 1e-12)
	assert.Zero(t, quantile.MAD([]float64{7, 7, 7}))
	assert.True(t, math.IsNaN(quantile.MAD(nil)))
}

func TestECDF(t *testing.T) {
	values, probs := quantile.ECDF([]float64{3, 1, 2, 2})
	require.Len(t, values, 4)
	require.Len(t, probs, 4)

	assert.Equal(t, []float64{1, 2, 2, 3}, values)
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, probs)
}

func TestECDF_Empty(t *testing.T) {
	values, probs := quantile.ECDF(nil)
	assert.Empty(t, values)
	assert.Empty(t, probs)
}
