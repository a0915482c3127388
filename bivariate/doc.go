// Package bivariate provides pairwise and matrix covariance/correlation.
//
// Pair kernels operate on the shared length of two series; correlation is
// NaN when either series has zero standard deviation. The NaN* variants
// apply pairwise deletion: an index survives only if both series are
// non-NaN there.
//
//	c := bivariate.Cov(xs, ys)
//	r := bivariate.Corr(xs, ys)
//	r := bivariate.NaNCorr(xs, ys)
//
// Matrix kernels take a rectangular table with rows as samples and columns
// as features and return a symmetric feature×feature matrix. A ragged
// table is a signalled failure (ErrRaggedTable), not undefined behavior.
// In a correlation matrix the diagonal is 1 except for a constant feature,
// whose entire row and column are NaN.
//
//	cov, err := bivariate.CovMatrix(table)
//	corr, err := bivariate.CorrMatrix(table)
//	colMeans, err := bivariate.AxisMean(table, bivariate.AxisColumns)
package bivariate
