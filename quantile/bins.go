package quantile

import "sort"

// Bins assigns each element of xs a quantile-bin index in [0, nBins) by
// sorted rank: ranks are partitioned into nBins contiguous groups with the
// boundary of group b at rank ⌊(b+1)·n/nBins⌋, and each element takes the
// group index of its rank. Equal values may land in different bins
// depending on tie order in the sort; that is the documented policy.
// Empty input or nBins <= 0 yields an empty slice.
func Bins(xs []float64, nBins int) []int {
	n := len(xs)
	if n == 0 || nBins <= 0 {
		return []int{}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return xs[order[a]] < xs[order[b]]
	})

	out := make([]int, n)
	bin := 0
	for rank, idx := range order {
		for bin < nBins-1 && rank >= (bin+1)*n/nBins {
			bin++
		}
		out[idx] = bin
	}
	return out
}
