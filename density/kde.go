package density

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/moments"
)

// minBandwidth replaces a degenerate (zero or NaN) Silverman bandwidth.
const minBandwidth = 1e-12

// SilvermanBandwidth returns the rule-of-thumb KDE bandwidth
// 1.06·std·n^(-1/5) for xs. A zero or NaN standard deviation yields a
// tiny positive bandwidth instead of zero.
func SilvermanBandwidth(xs []float64) float64 {
	s := moments.Std(xs)
	n := float64(len(xs))
	bw := 1.06 * s * math.Pow(n, -1.0/5.0)
	if bw <= 0 || math.IsNaN(bw) {
		return minBandwidth
	}
	return bw
}

// KDEGaussian estimates the density of xs with a Gaussian kernel over an
// evenly spaced grid of nPoints between min(xs) and max(xs), returning the
// grid and the density as parallel slices. A non-positive bandwidth
// selects Silverman's rule. A degenerate range (min == max) yields a grid
// of the repeated value with density all 0. Empty input or nPoints <= 0
// yields two empty slices.
//
// Cost is O(nPoints·len(xs)); the call performs no locking or I/O and may
// be dispatched to a background goroutine.
func KDEGaussian(xs []float64, nPoints int, bandwidth float64) (grid, dens []float64) {
	if len(xs) == 0 || nPoints <= 0 {
		return []float64{}, []float64{}
	}

	bw := bandwidth
	if bw <= 0 {
		bw = SilvermanBandwidth(xs)
	}

	min, max := xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	grid = make([]float64, nPoints)
	dens = make([]float64, nPoints)
	if max == min {
		for i := range grid {
			grid[i] = min
		}
		return grid, dens
	}

	step := 0.0
	if nPoints > 1 {
		step = (max - min) / float64(nPoints-1)
	}
	norm := 1 / (bw * math.Sqrt(2*math.Pi))
	nf := float64(len(xs))

	for i := range grid {
		x0 := min + float64(i)*step
		grid[i] = x0
		sum := 0.0
		for _, x := range xs {
			z := (x0 - x) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		dens[i] = norm * sum / nf
	}
	return grid, dens
}
