// Package density provides Gaussian kernel density estimation.
//
//	grid, dens := density.KDEGaussian(xs, 256, 0)
//
// A non-positive bandwidth selects Silverman's rule of thumb,
// 1.06·std·n^(-1/5). Cost is O(nPoints·n); the call is pure and safe to
// dispatch to a background goroutine for large inputs.
package density
