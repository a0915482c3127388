package transforms

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/moments"
)

// Diff returns the lagged differences of xs. For periods > 0,
// out[i] = xs[i] - xs[i-periods] once i >= periods and NaN before; for
// periods < 0, out[i] = xs[i] - xs[i+|periods|] while i < n-|periods| and
// NaN after. periods == 0 or empty input yields an empty slice.
func Diff(xs []float64, periods int) []float64 {
	return shifted(xs, periods, func(x, base float64) float64 {
		return x - base
	})
}

// PctChange returns the relative change of xs against the lagged value:
// xs[i]/base - 1, with the same shift convention as Diff. A zero base
// yields NaN. periods == 0 or empty input yields an empty slice.
func PctChange(xs []float64, periods int) []float64 {
	return shifted(xs, periods, func(x, base float64) float64 {
		if base == 0 {
			return math.NaN()
		}
		return x/base - 1
	})
}

// shifted applies f(x, base) under the shared Diff/PctChange shift
// convention, filling the uncovered edge with NaN.
func shifted(xs []float64, periods int, f func(x, base float64) float64) []float64 {
	n := len(xs)
	if periods == 0 || n == 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if periods > 0 {
		for i := range xs {
			if i < periods {
				out[i] = math.NaN()
				continue
			}
			out[i] = f(xs[i], xs[i-periods])
		}
		return out
	}

	lag := -periods
	for i := range xs {
		if i >= n-lag {
			out[i] = math.NaN()
			continue
		}
		out[i] = f(xs[i], xs[i+lag])
	}
	return out
}

// CumSum returns the running total of xs in a single pass.
func CumSum(xs []float64) []float64 {
	out := make([]float64, len(xs))
	sum := 0.0
	for i, x := range xs {
		sum += x
		out[i] = sum
	}
	return out
}

// CumMean returns the running average of xs in a single pass.
func CumMean(xs []float64) []float64 {
	out := make([]float64, len(xs))
	sum := 0.0
	for i, x := range xs {
		sum += x
		out[i] = sum / float64(i+1)
	}
	return out
}

// SignMask returns the elementwise sign of xs in {-1, 0, 1}.
func SignMask(xs []float64) []int8 {
	out := make([]int8, len(xs))
	for i, x := range xs {
		switch {
		case x > 0:
			out[i] = 1
		case x < 0:
			out[i] = -1
		}
	}
	return out
}

// Demean subtracts the mean of xs from every element.
func Demean(xs []float64) []float64 {
	mean := moments.Mean(xs)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x - mean
	}
	return out
}

// DemeanWithSigns subtracts the mean of xs and returns the residuals
// together with their sign mask.
func DemeanWithSigns(xs []float64) ([]float64, []int8) {
	demeaned := Demean(xs)
	return demeaned, SignMask(demeaned)
}
