// Package robust provides outlier masks and scaling transforms.
//
// Outlier kernels return a boolean mask parallel to the input. Degenerate
// spreads never flag anything: a zero or NaN IQR, or a zero or NaN
// standard deviation, yields an all-false mask.
//
//	mask := robust.IQROutliers(xs, 1.5)
//	mask := robust.ZScoreOutliers(xs, 3)
//
// Scaling kernels return a fresh slice plus the fitted parameters:
//
//	scaled, min, max := robust.MinMaxScale(xs)
//	scaled, med, mad := robust.RobustScale(xs, 1.4826)
//	clamped := robust.Winsorize(xs, 0.05, 0.95)
package robust
