package quantile

import (
	"math"
	"sort"
)

// sortedCopy returns a sorted copy of xs. NaNs collate via sort.Float64s
// (NaN sorts before everything else).
func sortedCopy(xs []float64) []float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return sorted
}

// fromSorted computes the q-quantile of an already sorted slice using
// linear interpolation at position q*(n-1).
func fromSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	w := pos - float64(lower)
	return sorted[lower]*(1-w) + sorted[upper]*w
}

// Quantile returns the q-quantile of xs with linear interpolation between
// the bracketing order statistics. q <= 0 returns the minimum, q >= 1 the
// maximum. Returns NaN for empty input.
func Quantile(xs []float64, q float64) float64 {
	return fromSorted(sortedCopy(xs), q)
}

// Median returns the 0.5-quantile of xs.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// IQR returns the first quartile, third quartile, and interquartile range
// of xs, using the same interpolation as Quantile.
func IQR(xs []float64) (q1, q3, spread float64) {
	sorted := sortedCopy(xs)
	q1 = fromSorted(sorted, 0.25)
	q3 = fromSorted(sorted, 0.75)
	return q1, q3, q3 - q1
}

// MAD returns the median absolute deviation of xs: the median of the
// absolute deviations from the median. Returns NaN for empty input.
func MAD(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	med := Median(xs)
	devs := make([]float64, len(xs))
	for i, x := range xs {
		devs[i] = math.Abs(x - med)
	}
	sort.Float64s(devs)
	return fromSorted(devs, 0.5)
}
