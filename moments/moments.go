package moments

import "math"

// Mean calculates the arithmetic mean of xs. Returns NaN for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance calculates the sample variance of xs (division by n-1).
// Returns NaN for fewer than two samples.
func Variance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return math.NaN()
	}
	mean := Mean(xs)
	sumSq := 0.0
	for _, x := range xs {
		diff := x - mean
		sumSq += diff * diff
	}
	return sumSq / float64(n-1)
}

// Std calculates the sample standard deviation of xs.
// Returns NaN for fewer than two samples.
func Std(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// ZScores standardizes xs to (x - mean) / std. A zero or NaN standard
// deviation propagates NaN through every element; degenerate inputs are
// not silently rescaled.
func ZScores(xs []float64) []float64 {
	mean := Mean(xs)
	std := Std(xs)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = (x - mean) / std
	}
	return out
}

// dropNaN returns the non-NaN entries of xs in order.
func dropNaN(xs []float64) []float64 {
	valid := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			valid = append(valid, x)
		}
	}
	return valid
}

// NaNMean calculates the mean of the non-NaN entries of xs.
// Returns NaN when no entry survives.
func NaNMean(xs []float64) float64 {
	return Mean(dropNaN(xs))
}

// NaNVariance calculates the sample variance of the non-NaN entries of xs.
// Returns NaN when fewer than two entries survive.
func NaNVariance(xs []float64) float64 {
	return Variance(dropNaN(xs))
}

// NaNStd calculates the sample standard deviation of the non-NaN entries
// of xs. Returns NaN when fewer than two entries survive.
func NaNStd(xs []float64) float64 {
	return math.Sqrt(NaNVariance(xs))
}
