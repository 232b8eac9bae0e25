package extractors

import (
	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// PairSlopeTrend looks at the last 30 measurements and reports the
// fraction of increasing first differences minus the fraction of
// decreasing ones (Richards et al. 2011).
type PairSlopeTrend struct{}

func (PairSlopeTrend) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"PairSlopeTrend"},
	}
}

func (PairSlopeTrend) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) < 2 {
		return nil, ErrShortSeries
	}
	last := mag
	if len(mag) > 30 {
		last = mag[len(mag)-30:]
	}

	up, down := 0, 0
	for _, d := range diff(last) {
		if d > 0 {
			up++
		} else {
			down++
		}
	}
	v := float64(up-down) / 30
	return map[string]extractor.Value{"PairSlopeTrend": extractor.Scalar(v)}, nil
}
