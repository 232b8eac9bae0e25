package extractors

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// MedianAbsDev is the median absolute deviation from the median
// magnitude.  Close to 0.675 for a normal distribution.
type MedianAbsDev struct{}

func (MedianAbsDev) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"MedianAbsDev"},
	}
}

func (MedianAbsDev) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) == 0 {
		return nil, ErrShortSeries
	}
	med := median(mag)
	devs := make([]float64, len(mag))
	for i, m := range mag {
		devs[i] = math.Abs(m - med)
	}
	return map[string]extractor.Value{"MedianAbsDev": extractor.Scalar(median(devs))}, nil
}

// MedianBRP is the median buffer range percentage: the fraction of
// points within a tenth of the full magnitude range of the median.
type MedianBRP struct{}

func (MedianBRP) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"MedianBRP"},
	}
}

func (MedianBRP) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) == 0 {
		return nil, ErrShortSeries
	}
	med := median(mag)
	buffer := (floats.Max(mag) - floats.Min(mag)) / 10

	count := 0
	for _, m := range mag {
		if m < med+buffer && m > med-buffer {
			count++
		}
	}
	v := float64(count) / float64(len(mag))
	return map[string]extractor.Value{"MedianBRP": extractor.Scalar(v)}, nil
}
