package window

import "math"

// truncatePair trims xs and ys to their shared length. Both rolling pair
// kernels apply the same truncation so they stay consistent with each
// other on unequal-length input.
func truncatePair(xs, ys []float64) ([]float64, []float64) {
	if len(xs) > len(ys) {
		xs = xs[:len(ys)]
	} else if len(ys) > len(xs) {
		ys = ys[:len(xs)]
	}
	return xs, ys
}

// RollingCov returns the sample covariance (ddof=1) of each length-w
// window of xs and ys, via prefix sums of x, y, and x·y, O(n) total.
// Unequal-length inputs are truncated to the shorter length. Returns an
// empty slice when w == 0 or w exceeds the truncated length; w == 1
// defines every window covariance as 0.
func RollingCov(xs, ys []float64, w int) []float64 {
	xs, ys = truncatePair(xs, ys)
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

	psx := make([]float64, n+1)
	psy := make([]float64, n+1)
	psxy := make([]float64, n+1)
	for i := 0; i < n; i++ {
		psx[i+1] = psx[i] + xs[i]
		psy[i+1] = psy[i] + ys[i]
		psxy[i+1] = psxy[i] + xs[i]*ys[i]
	}

	wf := float64(w)
	denom := float64(w - 1)
	for i := 0; i+w <= n; i++ {
		sumX := psx[i+w] - psx[i]
		sumY := psy[i+w] - psy[i]
		sumXY := psxy[i+w] - psxy[i]
		out = append(out, (sumXY-sumX*sumY/wf)/denom)
	}
	return out
}

// RollingCorr returns the Pearson correlation of each length-w window of
// xs and ys, built from RollingCov and the per-window variances. A zero or
// NaN denominator yields NaN for that window. Unequal-length inputs are
// truncated to the shorter length, consistently with RollingCov.
func RollingCorr(xs, ys []float64, w int) []float64 {
	xs, ys = truncatePair(xs, ys)

	covs := RollingCov(xs, ys, w)
	varsX := RollingVariance(xs, w)
	varsY := RollingVariance(ys, w)

	out := make([]float64, len(covs))
	for i := range covs {
		denom := math.Sqrt(varsX[i]) * math.Sqrt(varsY[i])
		if denom == 0 || math.IsNaN(denom) {
			out[i] = math.NaN()
			continue
		}
		out[i] = covs[i] / denom
	}
	return out
}
