// Package window provides O(n) rolling-window statistics.
//
// Every rolling kernel maintains moving accumulators (running sums and
// sums of squares, or prefix sums) so the total cost is O(n) regardless of
// the window length, never the naive O(n·w). For input of length n and
// window w with 1 <= w <= n, the output has n-w+1 entries, one per window;
// a window length outside that range yields an empty slice, not an error.
//
// # Rolling Statistics
//
//	means := window.RollingMean(xs, w)
//	vars := window.RollingVariance(xs, w)
//	stds := window.RollingStd(xs, w)
//	z := window.RollingZScore(xs, w)
//	covs := window.RollingCov(xs, ys, w)
//	corrs := window.RollingCorr(xs, ys, w)
//	smooth := window.EWMA(xs, 0.2)
//
// Degenerate-window conventions: w == 1 defines the window variance as 0
// (not NaN); a zero window standard deviation defines the z-score as 0 so
// infinities never propagate; a zero or NaN correlation denominator yields
// NaN.
//
// # NaN-Skipping Variants
//
// The NaNRolling* functions skip NaN entries inside each window. A window
// needs at least one valid value for its mean, and at least two for its
// variance, standard deviation, covariance, or correlation; otherwise that
// window's output is NaN. They are built on Accumulator, a streaming
// ring-buffer accumulator also usable directly:
//
//	acc := window.NewAccumulator(20)
//	for _, x := range xs {
//	    acc.Push(x)
//	    fmt.Println(acc.Mean(), acc.Std())
//	}
package window
