package window

import "math"

// RollingMean returns the mean of each length-w window of xs, maintained
// as a moving sum in O(n) total. Returns an empty slice when w == 0 or
// w > len(xs).
func RollingMean(xs []float64, w int) []float64 {
	n := len(xs)
	if w <= 0 || w > n {
		return []float64{}
	}

	out := make([]float64, 0, n-w+1)
	sum := 0.0
	for _, x := range xs[:w] {
		sum += x
	}
	out = append(out, sum/float64(w))

	for i := w; i < n; i++ {
		sum += xs[i] - xs[i-w]
		out = append(out, sum/float64(w))
	}
	return out
}

// RollingVariance returns the sample variance (ddof=1) of each length-w
// window of xs via prefix sums of x and x², O(n) total. A window of length
// 1 has variance 0 by convention. Negative values from floating-point
// cancellation are clamped to 0. Returns an empty slice when w == 0 or
// w > len(xs).
func RollingVariance(xs []float64, w int) []float64 {
	n := len(xs)
	if w <= 0 || w > n {
		return []float64{}
	}

	out := make([]float64, 0, n-w+1)
	if w == 1 {
		for range xs {
			out = append(out, 0)
		}
		return out
	}

	prefixSum := make([]float64, n+1)
	prefixSq := make([]float64, n+1)
	for i, x := range xs {
		prefixSum[i+1] = prefixSum[i] + x
		prefixSq[i+1] = prefixSq[i] + x*x
	}

	wf := float64(w)
	denom := float64(w - 1)
	for i := 0; i+w <= n; i++ {
		sum := prefixSum[i+w] - prefixSum[i]
		sumSq := prefixSq[i+w] - prefixSq[i]
		mean := sum / wf
		v := (sumSq - wf*mean*mean) / denom
		if v < 0 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// RollingStd returns the sample standard deviation of each length-w window
// of xs. Same conventions as RollingVariance.
func RollingStd(xs []float64, w int) []float64 {
	out := RollingVariance(xs, w)
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}
	return out
}

// RollingZScore returns, for each length-w window, the z-score of the
// window's last element against the window mean and standard deviation.
// A zero window standard deviation defines the z-score as 0 so infinities
// never propagate. Returns an empty slice when w == 0 or w > len(xs).
func RollingZScore(xs []float64, w int) []float64 {
	means := RollingMean(xs, w)
	stds := RollingStd(xs, w)

	out := make([]float64, len(means))
	for i := range means {
		last := xs[i+w-1]
		if stds[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = (last - means[i]) / stds[i]
	}
	return out
}
