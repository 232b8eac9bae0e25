package extractors

import (
	"math"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// PercentAmplitude is the largest absolute deviation from the median
// magnitude, as a fraction of the median (Richards et al. 2011).
type PercentAmplitude struct{}

func (PercentAmplitude) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"PercentAmplitude"},
	}
}

func (PercentAmplitude) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) == 0 {
		return nil, ErrShortSeries
	}
	med := median(mag)

	var maxDist float64
	for _, m := range mag {
		if d := math.Abs(m - med); d > maxDist {
			maxDist = d
		}
	}
	return map[string]extractor.Value{
		"PercentAmplitude": extractor.Scalar(maxDist / med),
	}, nil
}
