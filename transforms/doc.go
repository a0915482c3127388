// Package transforms provides O(n) sequence transforms: differencing,
// percent change, cumulative sums and means, sign masks, and demeaning.
//
//	d := transforms.Diff(xs, 1)
//	r := transforms.PctChange(xs, 1)
//	cs := transforms.CumSum(xs)
//	cm := transforms.CumMean(xs)
//	signs := transforms.SignMask(xs)
//	resid, signs := transforms.DemeanWithSigns(xs)
//
// Diff and PctChange share one directional convention: positive periods
// look backward (out[i] compares xs[i] to xs[i-periods], NaN for the first
// periods entries), negative periods look forward (out[i] compares xs[i]
// to xs[i+|periods|], NaN for the last |periods| entries), and periods ==
// 0 yields an empty slice.
package transforms
