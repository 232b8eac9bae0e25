package extractors

import (
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// RCS yields Rcs, the range of the cumulative sum of mean-subtracted
// magnitudes scaled by N*sigma (Ellaway 1978; Kim et al. 2011).  Close
// to zero for symmetric distributions.
type RCS struct{}

func (RCS) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"Rcs"},
	}
}

func (RCS) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	v := rangeCumSum(mag)
	return map[string]extractor.Value{"Rcs": extractor.Scalar(v)}, nil
}

// rangeCumSum is max(S)-min(S) for S_l = sum_{i<=l}(m_i - mean)/(N*sigma).
func rangeCumSum(mag []float64) float64 {
	n := float64(len(mag))
	mean := stat.Mean(mag, nil)
	sigma := popStd(mag)

	var sum, maxS, minS float64
	first := true
	for _, m := range mag {
		sum += (m - mean) / (n * sigma)
		if first {
			maxS, minS = sum, sum
			first = false
			continue
		}
		if sum > maxS {
			maxS = sum
		}
		if sum < minS {
			minS = sum
		}
	}
	return maxS - minS
}
