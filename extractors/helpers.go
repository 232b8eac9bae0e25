package extractors

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrShortSeries is returned when a light curve has too few points for a
// formula's index arithmetic.
var ErrShortSeries = errors.New("extractors: light curve too short")

// percentile computes the q-th percentile (0..100) with linear
// interpolation between closest ranks, matching the numpy convention the
// reference values were produced with.  gonum's stat.Quantile
// interpolates the empirical CDF differently, so the catalogue keeps
// this local helper for rank-based features.
func percentile(xs []float64, q float64) float64 {
	s := sortedCopy(xs)
	if len(s) == 1 {
		return s[0]
	}
	pos := q / 100 * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return s[lo]
	}
	frac := pos - float64(lo)
	return s[lo]*(1-frac) + s[hi]*frac
}

func median(xs []float64) float64 { return percentile(xs, 50) }

func sortedCopy(xs []float64) []float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return s
}

// popStd is the population standard deviation (no Bessel correction),
// the convention the catalogue formulas are defined with.
func popStd(xs []float64) float64 {
	return math.Sqrt(stat.PopVariance(xs, nil))
}

// invVarMean is the magnitude mean weighted by inverse error variance.
func invVarMean(mag, err []float64) float64 {
	var num, den float64
	for i, m := range mag {
		w := 1 / (err[i] * err[i])
		num += m * w
		den += w
	}
	return num / den
}

// diff returns the successive differences x[i+1]-x[i].
func diff(xs []float64) []float64 {
	d := make([]float64, len(xs)-1)
	for i := range d {
		d[i] = xs[i+1] - xs[i]
	}
	return d
}

// stetsonDelta scales residuals about a weighted mean to unit variance:
// sqrt(n/(n-1)) * (m - mean) / err.
func stetsonDelta(mag, err []float64, mean float64) []float64 {
	n := float64(len(mag))
	k := math.Sqrt(n / (n - 1))
	d := make([]float64, len(mag))
	for i, m := range mag {
		d[i] = k * (m - mean) / err[i]
	}
	return d
}

// histogram2D counts points per cell of the bins described by the edge
// slices.  The last bin of each axis is closed on the right.  The
// result is flattened x-major.
func histogram2D(xs, ys []float64, xedges, yedges []float64) []float64 {
	nx, ny := len(xedges)-1, len(yedges)-1
	counts := make([]float64, nx*ny)
	for i := range xs {
		xi := binIndex(xs[i], xedges)
		yi := binIndex(ys[i], yedges)
		if xi < 0 || yi < 0 {
			continue
		}
		counts[xi*ny+yi]++
	}
	return counts
}

func binIndex(v float64, edges []float64) int {
	n := len(edges) - 1
	if v < edges[0] || v > edges[n] {
		return -1
	}
	if v == edges[n] {
		return n - 1
	}
	// binary search for the rightmost edge <= v
	lo, hi := 0, n
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if edges[mid] <= v {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// linspace fills n evenly spaced values over [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// logspace fills n values evenly spaced in log10 over [10^lo, 10^hi].
func logspace(lo, hi float64, n int) []float64 {
	xs := linspace(lo, hi, n)
	for i, x := range xs {
		xs[i] = math.Pow(10, x)
	}
	return xs
}
