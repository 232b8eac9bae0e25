package extractors

import (
	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Gskew is a median-based measure of skew:
// median(mag <= q3) + median(mag >= q97) - 2*median(mag).
type Gskew struct{}

func (Gskew) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Gskew"},
	}
}

func (Gskew) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) == 0 {
		return nil, ErrShortSeries
	}
	q3 := percentile(mag, 3)
	q97 := percentile(mag, 97)

	var low, high []float64
	for _, m := range mag {
		if m <= q3 {
			low = append(low, m)
		}
		if m >= q97 {
			high = append(high, m)
		}
	}
	v := median(low) + median(high) - 2*median(mag)
	return map[string]extractor.Value{"Gskew": extractor.Scalar(v)}, nil
}
