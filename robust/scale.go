package robust

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/quantile"
)

// madEpsilon replaces a zero MAD denominator in RobustScale.
const madEpsilon = 1e-12

// MinMaxScale maps xs linearly onto [0, 1] and returns the scaled slice
// with the observed minimum and maximum. A degenerate range (max == min)
// yields all zeros. Empty input yields an empty slice and NaN bounds.
func MinMaxScale(xs []float64) (scaled []float64, min, max float64) {
	if len(xs) == 0 {
		return []float64{}, math.NaN(), math.NaN()
	}

	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	scaled = make([]float64, len(xs))
	if max == min {
		return scaled, min, max
	}
	for i, x := range xs {
		scaled[i] = (x - min) / (max - min)
	}
	return scaled, min, max
}

// RobustScale centers xs on the median and divides by MAD·scaleFactor,
// returning the scaled slice with the fitted median and MAD. A zero MAD
// substitutes a tiny epsilon denominator instead of failing. Empty input
// yields an empty slice and NaN parameters.
func RobustScale(xs []float64, scaleFactor float64) (scaled []float64, med, mad float64) {
	if len(xs) == 0 {
		return []float64{}, math.NaN(), math.NaN()
	}

	med = quantile.Median(xs)
	mad = quantile.MAD(xs)
	denom := mad * scaleFactor
	if mad == 0 {
		denom = madEpsilon
	}

	scaled = make([]float64, len(xs))
	for i, x := range xs {
		scaled[i] = (x - med) / denom
	}
	return scaled, med, mad
}

// Winsorize clamps each element of xs into the closed interval
// [Quantile(lowerQ), Quantile(upperQ)]. Empty input yields an empty slice.
func Winsorize(xs []float64, lowerQ, upperQ float64) []float64 {
	if len(xs) == 0 {
		return []float64{}
	}

	low := quantile.Quantile(xs, lowerQ)
	high := quantile.Quantile(xs, upperQ)

	out := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case x < low:
			out[i] = low
		case x > high:
			out[i] = high
		default:
			out[i] = x
		}
	}
	return out
}
