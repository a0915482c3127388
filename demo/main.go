// Package main demonstrates the bunkerstats kernels on a synthetic series.
package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bunkerlabs/bunkerstats/bivariate"
	"github.com/bunkerlabs/bunkerstats/density"
	"github.com/bunkerlabs/bunkerstats/moments"
	"github.com/bunkerlabs/bunkerstats/quantile"
	"github.com/bunkerlabs/bunkerstats/robust"
	"github.com/bunkerlabs/bunkerstats/transforms"
	"github.com/bunkerlabs/bunkerstats/window"
)

func section(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

func main() {
	rng := rand.New(rand.NewSource(7))

	// A noisy trend with a few planted outliers.
	n := 500
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 50 + 0.05*float64(i) + rng.NormFloat64()*2
	}
	xs[100] = 120
	xs[350] = -40

	section("Moments")
	fmt.Printf("mean=%.4f variance=%.4f std=%.4f\n",
		moments.Mean(xs), moments.Variance(xs), moments.Std(xs))
	wMean, wVar, count := moments.Summarize(xs)
	fmt.Printf("welford: mean=%.4f variance=%.4f n=%d\n", wMean, wVar, count)

	section("Quantiles")
	q1, q3, spread := quantile.IQR(xs)
	fmt.Printf("median=%.4f q1=%.4f q3=%.4f iqr=%.4f mad=%.4f\n",
		quantile.Median(xs), q1, q3, spread, quantile.MAD(xs))

	section("Rolling statistics (w=20)")
	means := window.RollingMean(xs, 20)
	stds := window.RollingStd(xs, 20)
	z := window.RollingZScore(xs, 20)
	fmt.Printf("windows=%d first mean=%.4f last mean=%.4f\n",
		len(means), means[0], means[len(means)-1])
	fmt.Printf("first std=%.4f last z=%.4f\n", stds[0], z[len(z)-1])
	smooth := window.EWMA(xs, 0.1)
	fmt.Printf("ewma tail=%.4f\n", smooth[len(smooth)-1])

	section("Outliers")
	mask := robust.IQROutliers(xs, 1.5)
	flagged := 0
	for _, m := range mask {
		if m {
			flagged++
		}
	}
	fmt.Printf("iqr rule flags %d of %d points\n", flagged, n)

	section("Scaling")
	scaled, min, max := robust.MinMaxScale(xs)
	fmt.Printf("minmax: range [%.4f, %.4f] -> first=%.4f\n", min, max, scaled[0])
	_, med, mad := robust.RobustScale(xs, 1.4826)
	fmt.Printf("robust: median=%.4f mad=%.4f\n", med, mad)

	section("Correlation")
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = 0.8*xs[i] + rng.NormFloat64()*5
	}
	fmt.Printf("corr(x,y)=%.4f cov(x,y)=%.4f\n",
		bivariate.Corr(xs, ys), bivariate.Cov(xs, ys))
	rc := window.RollingCorr(xs, ys, 50)
	fmt.Printf("rolling corr tail=%.4f\n", rc[len(rc)-1])

	table := make([][]float64, n)
	for i := range table {
		table[i] = []float64{xs[i], ys[i], xs[i] + ys[i]}
	}
	corr, err := bivariate.CorrMatrix(table)
	if err != nil {
		fmt.Println("corr matrix:", err)
		return
	}
	fmt.Println("corr matrix:")
	for _, row := range corr {
		for _, v := range row {
			fmt.Printf(" %7.4f", v)
		}
		fmt.Println()
	}

	section("Density")
	grid, dens := density.KDEGaussian(xs, 64, 0)
	peak, at := 0.0, 0.0
	for i, d := range dens {
		if d > peak {
			peak, at = d, grid[i]
		}
	}
	fmt.Printf("kde peak density=%.5f at x=%.4f (silverman bw=%.4f)\n",
		peak, at, density.SilvermanBandwidth(xs))

	section("Transforms")
	d := transforms.Diff(xs, 1)
	finite := d[1:]
	fmt.Printf("diff: first=%v then mean=%.4f\n", math.IsNaN(d[0]), moments.Mean(finite))
	cm := transforms.CumMean(xs)
	fmt.Printf("cummean tail=%.4f\n", cm[len(cm)-1])
	_, signs := transforms.DemeanWithSigns(xs)
	pos := 0
	for _, s := range signs {
		if s > 0 {
			pos++
		}
	}
	fmt.Printf("%d of %d points above the mean\n", pos, n)
}
