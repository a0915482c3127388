package moments

import "math"

// Welford maintains running mean and variance using Welford's one-pass
// algorithm. The zero value is ready to use.
type Welford struct {
	count int
	mean  float64
	m2    float64
}

// Add incorporates a new data point into the running statistics.
func (w *Welford) Add(x float64) {
	w.count++
	delta := x - w.mean
	w.mean += delta / float64(w.count)
	delta2 := x - w.mean
	w.m2 += delta * delta2
}

// Count returns the number of values added so far.
func (w *Welford) Count() int {
	return w.count
}

// Mean returns the current running mean. Returns NaN if no values have
// been added.
func (w *Welford) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.mean
}

// Variance returns the current sample variance (M2/(n-1)).
// Returns NaN for fewer than two values.
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return math.NaN()
	}
	return w.m2 / float64(w.count-1)
}

// Std returns the current sample standard deviation.
func (w *Welford) Std() float64 {
	return math.Sqrt(w.Variance())
}

// Summarize runs the Welford update over xs in a single pass and returns
// the mean, sample variance, and count. It agrees with the two-pass
// Variance within floating tolerance.
func Summarize(xs []float64) (mean, variance float64, n int) {
	var w Welford
	for _, x := range xs {
		w.Add(x)
	}
	return w.Mean(), w.Variance(), w.Count()
}
