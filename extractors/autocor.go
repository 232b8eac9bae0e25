package extractors

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// AutocorLength yields Autocor_length: the first lag at which the
// sample autocorrelation function drops below 1/e (Kim et al. 2011).
type AutocorLength struct {
	// NLags is the initial number of lags examined; the search window
	// grows until the threshold crossing is found.
	NLags int
}

// NewAutocorLength returns the extractor with the standard 100 lag
// starting window.
func NewAutocorLength() *AutocorLength { return &AutocorLength{NLags: 100} }

func (*AutocorLength) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Autocor_length"},
	}
}

func (e *AutocorLength) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	threshold := math.Exp(-1)

	nlags := e.NLags
	for {
		ac := acf(mag, nlags)
		for k, v := range ac {
			if v < threshold {
				return map[string]extractor.Value{
					"Autocor_length": extractor.Scalar(float64(k)),
				}, nil
			}
		}
		if nlags >= len(mag) {
			// beyond the series length every autocovariance term
			// vanishes, so the threshold is always reached
			return map[string]extractor.Value{
				"Autocor_length": extractor.Scalar(float64(len(ac))),
			}, nil
		}
		nlags += 100
	}
}

// acf is the sample autocorrelation for lags 0..nlags, with the
// autocovariance normalized by the series length.
func acf(xs []float64, nlags int) []float64 {
	n := len(xs)
	mean := stat.Mean(xs, nil)
	var c0 float64
	for _, x := range xs {
		c0 += (x - mean) * (x - mean)
	}
	c0 /= float64(n)

	out := make([]float64, nlags+1)
	for k := 0; k <= nlags; k++ {
		if k >= n {
			out[k] = 0
			continue
		}
		var ck float64
		for t := 0; t+k < n; t++ {
			ck += (xs[t] - mean) * (xs[t+k] - mean)
		}
		out[k] = ck / float64(n) / c0
	}
	return out
}
