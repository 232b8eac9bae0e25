package extractors

import (
	"math"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Amplitude is half the difference between the median of the brightest
// 5% and the median of the faintest 5% of magnitudes (Richards et al.
// 2011).  For the sequence 0..1000 it equals 475.
type Amplitude struct{}

func (Amplitude) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Amplitude"},
	}
}

func (Amplitude) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	n := len(mag)
	k := int(math.Ceil(0.05 * float64(n)))
	if k < 1 {
		return nil, ErrShortSeries
	}
	s := sortedCopy(mag)
	amp := (median(s[n-k:]) - median(s[:k])) / 2
	return map[string]extractor.Value{"Amplitude": extractor.Scalar(amp)}, nil
}
