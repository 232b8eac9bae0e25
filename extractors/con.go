package extractors

import (
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Con counts runs of consecutive points more than two standard
// deviations from the mean, normalized by the number of candidate runs
// (Wozniak 2000).  Close to 0.045 for Gaussian magnitudes with the
// default run length of 3.
type Con struct {
	// Consecutive is the required run length.
	Consecutive int
}

// NewCon returns the extractor with the standard run length of 3.
func NewCon() *Con { return &Con{Consecutive: 3} }

func (*Con) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Con"},
	}
}

func (e *Con) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	n := len(mag)
	if n < e.Consecutive {
		return map[string]extractor.Value{"Con": extractor.Scalar(0)}, nil
	}

	mean := stat.Mean(mag, nil)
	sigma := popStd(mag)
	lo, hi := mean-2*sigma, mean+2*sigma

	count := 0
	for i := 0; i <= n-e.Consecutive; i++ {
		run := true
		for j := 0; j < e.Consecutive; j++ {
			if mag[i+j] <= hi && mag[i+j] >= lo {
				run = false
				break
			}
		}
		if run {
			count++
		}
	}
	v := float64(count) / float64(n-e.Consecutive+1)
	return map[string]extractor.Value{"Con": extractor.Scalar(v)}, nil
}
