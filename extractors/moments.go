package extractors

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Mean is the mean magnitude.
type Mean struct{}

func (Mean) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Mean"},
	}
}

func (Mean) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	m := stat.Mean(in.Series(lightcurve.Magnitude), nil)
	return map[string]extractor.Value{"Mean": extractor.Scalar(m)}, nil
}

// Std yields the population standard deviation of the magnitudes.
type Std struct{}

func (Std) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Std"},
	}
}

func (Std) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	s := popStd(in.Series(lightcurve.Magnitude))
	return map[string]extractor.Value{"Std": extractor.Scalar(s)}, nil
}

// MeanVariance yields Meanvariance, the ratio of standard deviation to
// mean magnitude; a simple variability index (Kim et al. 2011).
type MeanVariance struct{}

func (MeanVariance) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Meanvariance"},
	}
}

func (MeanVariance) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	v := popStd(mag) / stat.Mean(mag, nil)
	return map[string]extractor.Value{"Meanvariance": extractor.Scalar(v)}, nil
}

// Skew is the population skewness of the magnitudes.
type Skew struct{}

func (Skew) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Skew"},
	}
}

func (Skew) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	mean := stat.Mean(mag, nil)
	sigma := popStd(mag)
	var m3 float64
	for _, m := range mag {
		d := m - mean
		m3 += d * d * d
	}
	m3 /= float64(len(mag))
	return map[string]extractor.Value{
		"Skew": extractor.Scalar(m3 / (sigma * sigma * sigma)),
	}, nil
}

// SmallKurtosis is the small sample kurtosis of the magnitudes
// (Richards et al. 2011).  Zero for a normal distribution.
type SmallKurtosis struct{}

func (SmallKurtosis) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"SmallKurtosis"},
	}
}

func (SmallKurtosis) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	n := float64(len(mag))
	if n < 4 {
		return nil, ErrShortSeries
	}
	mean := stat.Mean(mag, nil)
	std := popStd(mag)

	var s float64
	for _, m := range mag {
		s += math.Pow((m-mean)/std, 4)
	}
	c1 := n * (n + 1) / ((n - 1) * (n - 2) * (n - 3))
	c2 := 3 * (n - 1) * (n - 1) / ((n - 2) * (n - 3))
	return map[string]extractor.Value{
		"SmallKurtosis": extractor.Scalar(c1*s - c2),
	}, nil
}
