package extractors

import (
	"math"
	"sort"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// MaxSlope is the largest absolute magnitude change rate between
// consecutive time-sorted observations (Richards et al. 2011).
type MaxSlope struct{}

func (MaxSlope) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{"MaxSlope"},
	}
}

func (MaxSlope) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	if len(mag) < 2 {
		return nil, ErrShortSeries
	}

	idx := make([]int, len(time))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return time[idx[a]] < time[idx[b]] })

	maxSlope := math.Inf(-1)
	for i := 0; i+1 < len(idx); i++ {
		a, b := idx[i], idx[i+1]
		slope := math.Abs(mag[b]-mag[a]) / (time[b] - time[a])
		if slope > maxSlope {
			maxSlope = slope
		}
	}
	return map[string]extractor.Value{"MaxSlope": extractor.Scalar(maxSlope)}, nil
}
