package bivariate

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/moments"
)

// Cov returns the sample covariance (ddof=1) of xs and ys over their
// shared length. Returns NaN for fewer than two shared samples.
func Cov(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return math.NaN()
	}

	mx := moments.Mean(xs[:n])
	my := moments.Mean(ys[:n])
	acc := 0.0
	for i := 0; i < n; i++ {
		acc += (xs[i] - mx) * (ys[i] - my)
	}
	return acc / float64(n-1)
}

// Corr returns the Pearson correlation of xs and ys over their shared
// length. Returns NaN when either series has zero standard deviation or
// fewer than two shared samples.
func Corr(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	sx := moments.Std(xs[:n])
	sy := moments.Std(ys[:n])
	if sx == 0 || sy == 0 {
		return math.NaN()
	}
	return Cov(xs, ys) / (sx * sy)
}

// dropNaNPairs keeps only the indices where both xs and ys are non-NaN,
// over the shared length.
func dropNaNPairs(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	fx := make([]float64, 0, n)
	fy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	return fx, fy
}

// NaNCov returns the sample covariance of xs and ys after pairwise
// deletion of NaN entries. Returns NaN when fewer than two complete pairs
// survive.
func NaNCov(xs, ys []float64) float64 {
	fx, fy := dropNaNPairs(xs, ys)
	return Cov(fx, fy)
}

// NaNCorr returns the Pearson correlation of xs and ys after pairwise
// deletion of NaN entries. Returns NaN when fewer than two complete pairs
// survive or either filtered series is constant.
func NaNCorr(xs, ys []float64) float64 {
	fx, fy := dropNaNPairs(xs, ys)
	return Corr(fx, fy)
}
