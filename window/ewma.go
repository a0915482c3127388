package window

// EWMA returns the exponentially weighted moving average of xs:
// out[0] = xs[0], then out[i] = alpha*xs[i] + (1-alpha)*out[i-1].
// alpha is expected in (0, 1] but is not validated here; out-of-range
// values are the caller's responsibility. A NaN anywhere in xs poisons
// every subsequent output; the propagation is deliberate and not
// sanitized. Empty input yields an empty slice.
func EWMA(xs []float64, alpha float64) []float64 {
	if len(xs) == 0 {
		return []float64{}
	}
	out := make([]float64, len(xs))
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out
}
