package extractors

import (
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Color is the difference between the mean magnitudes of the two bands
// (Kim et al. 2011).
type Color struct{}

func (Color) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Magnitude2,
		},
		Features: []string{"Color"},
	}
}

func (Color) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	c := stat.Mean(in.Series(lightcurve.Magnitude), nil) -
		stat.Mean(in.Series(lightcurve.Magnitude2), nil)
	return map[string]extractor.Value{"Color": extractor.Scalar(c)}, nil
}
