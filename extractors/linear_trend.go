package extractors

import (
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// LinearTrend is the slope of a least squares linear fit of magnitude
// against time.
type LinearTrend struct{}

func (LinearTrend) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{"LinearTrend"},
	}
}

func (LinearTrend) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	_, slope := stat.LinearRegression(
		in.Series(lightcurve.Time), in.Series(lightcurve.Magnitude),
		nil, false)
	return map[string]extractor.Value{"LinearTrend": extractor.Scalar(slope)}, nil
}
