package extractors

import (
	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Q31 is the interquartile range of the magnitudes (Kim et al. 2014).
type Q31 struct{}

func (Q31) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Q31"},
	}
}

func (Q31) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) == 0 {
		return nil, ErrShortSeries
	}
	v := percentile(mag, 75) - percentile(mag, 25)
	return map[string]extractor.Value{"Q31": extractor.Scalar(v)}, nil
}

// Q31Color yields Q31_color, the interquartile range of the aligned
// band difference B-R.
type Q31Color struct{}

func (Q31Color) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.AlignedMagnitude, lightcurve.AlignedMagnitude2,
		},
		Features: []string{"Q31_color"},
	}
}

func (Q31Color) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	m1 := in.Series(lightcurve.AlignedMagnitude)
	m2 := in.Series(lightcurve.AlignedMagnitude2)
	if len(m1) == 0 {
		return nil, ErrShortSeries
	}
	br := make([]float64, len(m1))
	for i := range m1 {
		br[i] = m1[i] - m2[i]
	}
	v := percentile(br, 75) - percentile(br, 25)
	return map[string]extractor.Value{"Q31_color": extractor.Scalar(v)}, nil
}
