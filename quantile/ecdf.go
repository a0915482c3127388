package quantile

// ECDF returns the empirical cumulative distribution function of xs as a
// pair of parallel slices: the values sorted ascending, and the cumulative
// probability (i+1)/n at each rank. Empty input yields two empty slices.
func ECDF(xs []float64) (values, probs []float64) {
	n := len(xs)
	if n == 0 {
		return []float64{}, []float64{}
	}
	values = sortedCopy(xs)
	probs = make([]float64, n)
	for i := range probs {
		probs[i] = float64(i+1) / float64(n)
	}
	return values, probs
}
