package window

import "math"

// NaNRollingMean returns the mean of the valid (non-NaN) values in each
// length-w window of xs. A window with no valid value yields NaN. Returns
// an empty slice when w == 0 or w > len(xs).
func NaNRollingMean(xs []float64, w int) []float64 {
	n := len(xs)
	if w <= 0 || w > n {
		return []float64{}
	}

	acc := NewAccumulator(w)
	out := make([]float64, 0, n-w+1)
	for i, x := range xs {
		acc.Push(x)
		if i >= w-1 {
			out = append(out, acc.Mean())
		}
	}
	return out
}

// NaNRollingStd returns the sample standard deviation of the valid values
// in each length-w window of xs. A window with fewer than two valid values
// yields NaN. Returns an empty slice when w == 0 or w > len(xs).
func NaNRollingStd(xs []float64, w int) []float64 {
	n := len(xs)
	if w <= 0 || w > n {
		return []float64{}
	}

	acc := NewAccumulator(w)
	out := make([]float64, 0, n-w+1)
	for i, x := range xs {
		acc.Push(x)
		if i >= w-1 {
			out = append(out, acc.Std())
		}
	}
	return out
}

// NaNRollingZScore returns, for each length-w window, the z-score of the
// window's last element against the mean and standard deviation of the
// window's valid values. A NaN last element or a window with fewer than
// two valid values yields NaN; a zero standard deviation yields 0.
func NaNRollingZScore(xs []float64, w int) []float64 {
	n := len(xs)
	if w <= 0 || w > n {
		return []float64{}
	}

	acc := NewAccumulator(w)
	out := make([]float64, 0, n-w+1)
	for i, x := range xs {
		acc.Push(x)
		if i < w-1 {
			continue
		}
		std := acc.Std()
		switch {
		case math.IsNaN(x) || math.IsNaN(std):
			out = append(out, math.NaN())
		case std == 0:
			out = append(out, 0)
		default:
			out = append(out, (x-acc.Mean())/std)
		}
	}
	return out
}

// pairSums holds moving sums over the pairwise-complete entries of a
// window: positions where both series are non-NaN.
type pairSums struct {
	n     int
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

func (p *pairSums) add(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	p.n++
	p.sumX += x
	p.sumY += y
	p.sumXX += x * x
	p.sumYY += y * y
	p.sumXY += x * y
}

func (p *pairSums) remove(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	p.n--
	p.sumX -= x
	p.sumY -= y
	p.sumXX -= x * x
	p.sumYY -= y * y
	p.sumXY -= x * y
}

func (p *pairSums) cov() float64 {
	if p.n < 2 {
		return math.NaN()
	}
	k := float64(p.n)
	return (p.sumXY - p.sumX*p.sumY/k) / (k - 1)
}

func (p *pairSums) corr() float64 {
	if p.n < 2 {
		return math.NaN()
	}
	k := float64(p.n)
	meanX := p.sumX / k
	meanY := p.sumY / k
	varX := (p.sumXX - k*meanX*meanX) / (k - 1)
	varY := (p.sumYY - k*meanY*meanY) / (k - 1)
	if varX < 0 {
		varX = 0
	}
	if varY < 0 {
		varY = 0
	}
	denom := math.Sqrt(varX) * math.Sqrt(varY)
	if denom == 0 || math.IsNaN(denom) {
		return math.NaN()
	}
	return p.cov() / denom
}

// NaNRollingCov returns the sample covariance of the pairwise-complete
// entries of each length-w window of xs and ys. A window with fewer than
// two complete pairs yields NaN. Unequal-length inputs are truncated to
// the shorter length.
func NaNRollingCov(xs, ys []float64, w int) []float64 {
	return nanRollingPair(xs, ys, w, (*pairSums).cov)
}

// NaNRollingCorr returns the Pearson correlation of the pairwise-complete
// entries of each length-w window of xs and ys. A window with fewer than
// two complete pairs, or a zero denominator, yields NaN. Unequal-length
// inputs are truncated to the shorter length.
func NaNRollingCorr(xs, ys []float64, w int) []float64 {
	return nanRollingPair(xs, ys, w, (*pairSums).corr)
}

func nanRollingPair(xs, ys []float64, w int, stat func(*pairSums) float64) []float64 {
	xs, ys = truncatePair(xs, ys)
	n := len(xs)
	if w <= 0 || w > n {
		return []float64{}
	}

	var sums pairSums
	out := make([]float64, 0, n-w+1)
	for i := 0; i < n; i++ {
		sums.add(xs[i], ys[i])
		if i >= w {
			sums.remove(xs[i-w], ys[i-w])
		}
		if i >= w-1 {
			out = append(out, stat(&sums))
		}
	}
	return out
}
