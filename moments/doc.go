// Package moments provides single-series central tendency and dispersion.
//
// All functions take a read-only view of the input and return fresh values.
// Sample variance uses Bessel's correction (division by n-1) and is NaN for
// fewer than two samples.
//
// # Basic Moments
//
//	m := moments.Mean(xs)
//	v := moments.Variance(xs)
//	s := moments.Std(xs)
//	z := moments.ZScores(xs)
//
// # NaN-Skipping Variants
//
// The NaN* functions drop NaN entries before applying the same formulas.
// An empty or all-NaN input yields NaN:
//
//	m := moments.NaNMean(xs)
//	v := moments.NaNVariance(xs)
//	s := moments.NaNStd(xs)
//
// # Streaming Moments
//
// Welford's one-pass algorithm computes mean and variance incrementally,
// without re-reading the buffer:
//
//	var w moments.Welford
//	for _, x := range xs {
//	    w.Add(x)
//	}
//	mean, variance, n := w.Mean(), w.Variance(), w.Count()
//
// The one-shot form Summarize(xs) runs the same update over a whole slice
// and agrees with the two-pass Variance within floating tolerance.
package moments
