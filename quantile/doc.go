// Package quantile provides order statistics: quantiles, median, IQR, MAD,
// the empirical CDF, and quantile binning.
//
// Quantiles interpolate linearly between the two bracketing order
// statistics at position q*(n-1); q <= 0 returns the minimum and q >= 1
// the maximum. Sort-based kernels copy the input before sorting, so the
// caller's slice is never reordered.
//
//	q1, q3, spread := quantile.IQR(xs)
//	med := quantile.Median(xs)
//	mad := quantile.MAD(xs)
//	values, probs := quantile.ECDF(xs)
//	bins := quantile.Bins(xs, 4)
package quantile
