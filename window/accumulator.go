package window

import "math"

// Accumulator keeps a fixed-size window of values and maintains running
// sums over the valid (non-NaN) entries, giving O(1) mean, variance, and
// standard deviation per push. NaN values occupy a window slot but do not
// enter the sums, so statistics cover only the valid entries.
type Accumulator struct {
	capacity int
	values   []float64
	idx      int
	count    int
	valid    int
	sum      float64
	sumSq    float64
}

// NewAccumulator creates a window accumulator holding up to capacity
// values. A capacity below 1 is clamped to 1.
func NewAccumulator(capacity int) *Accumulator {
	if capacity < 1 {
		capacity = 1
	}
	return &Accumulator{
		capacity: capacity,
		values:   make([]float64, capacity),
	}
}

// Push adds v to the window, evicting the oldest value once the window
// is full.
func (a *Accumulator) Push(v float64) {
	if a.count == a.capacity {
		old := a.values[a.idx]
		if !math.IsNaN(old) {
			a.sum -= old
			a.sumSq -= old * old
			a.valid--
		}
	} else {
		a.count++
	}

	a.values[a.idx] = v
	if !math.IsNaN(v) {
		a.sum += v
		a.sumSq += v * v
		a.valid++
	}
	a.idx = (a.idx + 1) % a.capacity
}

// Count returns the number of values currently in the window.
func (a *Accumulator) Count() int {
	return a.count
}

// Valid returns the number of non-NaN values currently in the window.
func (a *Accumulator) Valid() int {
	return a.valid
}

// Last returns the most recently pushed value. Returns NaN if the window
// is empty.
func (a *Accumulator) Last() float64 {
	if a.count == 0 {
		return math.NaN()
	}
	return a.values[(a.idx+a.capacity-1)%a.capacity]
}

// Mean returns the mean of the valid values in the window. Returns NaN
// when no valid value is present.
func (a *Accumulator) Mean() float64 {
	if a.valid == 0 {
		return math.NaN()
	}
	return a.sum / float64(a.valid)
}

// Variance returns the sample variance (ddof=1) of the valid values in
// the window, clamped at 0 against floating-point cancellation. Returns
// NaN when fewer than two valid values are present.
func (a *Accumulator) Variance() float64 {
	if a.valid < 2 {
		return math.NaN()
	}
	k := float64(a.valid)
	mean := a.sum / k
	v := (a.sumSq - k*mean*mean) / (k - 1)
	if v < 0 {
		v = 0
	}
	return v
}

// Std returns the sample standard deviation of the valid values in the
// window. Returns NaN when fewer than two valid values are present.
func (a *Accumulator) Std() float64 {
	return math.Sqrt(a.Variance())
}
