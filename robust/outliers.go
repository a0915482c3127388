package robust

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/moments"
	"github.com/bunkerlabs/bunkerstats/quantile"
)

// IQROutliers flags every x outside [Q1 - k·IQR, Q3 + k·IQR]. A zero or
// NaN IQR flags nothing: the mask is all false, never all true.
func IQROutliers(xs []float64, k float64) []bool {
	out := make([]bool, len(xs))
	q1, q3, spread := quantile.IQR(xs)
	if spread == 0 || math.IsNaN(spread) {
		return out
	}
	low := q1 - k*spread
	high := q3 + k*spread
	for i, x := range xs {
		out[i] = x < low || x > high
	}
	return out
}

// ZScoreOutliers flags every x whose z-score magnitude exceeds threshold.
// A zero or NaN standard deviation flags nothing.
func ZScoreOutliers(xs []float64, threshold float64) []bool {
	out := make([]bool, len(xs))
	mean := moments.Mean(xs)
	std := moments.Std(xs)
	if std == 0 || math.IsNaN(std) {
		return out
	}
	for i, x := range xs {
		out[i] = math.Abs((x-mean)/std) > threshold
	}
	return out
}
