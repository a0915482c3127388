package quantile_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunkerlabs/bunkerstats/quantile"
)

func TestBins_AssignsByRank(t *testing.T) {
	// Values 10..40 in scrambled order; with 2 bins the lower half of
	// ranks lands in bin 0 and the upper half in bin 1.
	xs := []float64{30, 10, 40, 20}
	bins := quantile.Bins(xs, 2)

	assert.Equal(t, []int{1, 0, 1, 0}, bins)
}

func TestBins_NearEqualSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = rng.NormFloat64()
	}

	const nBins = 7
	bins := quantile.Bins(xs, nBins)
	require.Len(t, bins, len(xs))

	counts := make([]int, nBins)
	for _, b := range bins {
		require.GreaterOrEqual(t, b, 0)
		require.Less(t, b, nBins)
		counts[b]++
	}

	// Rank partitioning keeps group sizes within one of each other.
	lo, hi := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	assert.LessOrEqual(t, hi-lo, 1, "bin sizes should be near-equal, got %v", counts)
}

func TestBins_TiesMaySplit(t *testing.T) {
	// All-equal values still partition by rank; the split is the
	// documented tie policy, not a defect.
	bins := quantile.Bins([]float64{5, 5, 5, 5}, 2)
	assert.Equal(t, []int{0, 0, 1, 1}, bins)
}

func TestBins_Degenerate(t *testing.T) {
	assert.Empty(t, quantile.Bins(nil, 3))
	assert.Empty(t, quantile.Bins([]float64{1, 2}, 0))
	assert.Empty(t, quantile.Bins([]float64{1, 2}, -3), "negative bin count must not yield an all-zeros assignment")
}
