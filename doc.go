// Package bunkerstats provides statistical kernels for dense numeric arrays.
//
// BunkerStats is a library of pure, synchronous statistical functions over
// float64 slices and rectangular tables: central tendency and dispersion,
// quantiles and robust statistics, O(n) rolling-window statistics, outlier
// masks, scaling and normalization, covariance/correlation, cumulative
// transforms, and Gaussian kernel density estimation.
//
// # Design
//
// Every kernel is a pure function from caller-owned input plus scalar
// parameters to a freshly allocated output. Kernels never retain or mutate
// input; sort-based kernels work on an internal copy. There is no shared
// mutable state, so concurrent calls on independent inputs are safe. The
// expensive kernels (KDE, full covariance/correlation matrices) may be
// dispatched to a background goroutine by the caller without affecting
// correctness.
//
// Numeric degeneracies (empty input, fewer than two samples for a variance,
// zero-variance denominators, degenerate ranges) are not errors: each kernel
// documents a value-level convention: NaN, an empty slice, or an all-false
// mask. Only invalid arguments such as a ragged table or an out-of-range
// axis selector produce errors.
//
// # Quick Start
//
// Rolling statistics over a series:
//
//	means := window.RollingMean(xs, 20)
//	stds := window.RollingStd(xs, 20)
//	z := window.RollingZScore(xs, 20)
//
// Robust outlier detection:
//
//	mask := robust.IQROutliers(xs, 1.5)
//
// Density estimation:
//
//	grid, dens := density.KDEGaussian(xs, 256, 0) // Silverman bandwidth
//
// # Packages
//
// The library is organized into the following packages:
//
//   - moments: mean/variance/std, z-scores, NaN-skipping variants, Welford
//   - quantile: quantiles, median, IQR, MAD, ECDF, quantile binning
//   - window: O(n) rolling statistics, EWMA, streaming accumulator
//   - robust: outlier masks, min-max/robust scaling, winsorization
//   - bivariate: pairwise and matrix covariance/correlation
//   - density: Gaussian kernel density estimation
//   - transforms: diff, percent change, cumulative sums, sign masks
package bunkerstats
