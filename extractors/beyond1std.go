package extractors

import (
	"math"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Beyond1Std is the fraction of points more than one standard deviation
// away from the error-weighted mean magnitude (Richards et al. 2011).
// Close to 0.32 for Gaussian magnitudes.
type Beyond1Std struct{}

func (Beyond1Std) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Error,
		},
		Features: []string{"Beyond1Std"},
	}
}

func (Beyond1Std) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	err := in.Series(lightcurve.Error)
	n := len(mag)
	if n < 2 {
		return nil, ErrShortSeries
	}

	wmean := invVarMean(mag, err)
	var ss float64
	for _, m := range mag {
		ss += (m - wmean) * (m - wmean)
	}
	std := math.Sqrt(ss / float64(n-1))

	count := 0
	for _, m := range mag {
		if m > wmean+std || m < wmean-std {
			count++
		}
	}
	v := float64(count) / float64(n)
	return map[string]extractor.Value{"Beyond1Std": extractor.Scalar(v)}, nil
}
