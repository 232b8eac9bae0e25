package extractors

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// AndersonDarling squashes the Anderson-Darling normality statistic of
// the magnitudes through a logistic curve (Kim et al. 2009).
type AndersonDarling struct{}

func (AndersonDarling) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"AndersonDarling"},
	}
}

func (AndersonDarling) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	if len(mag) < 4 {
		return nil, ErrShortSeries
	}
	a2 := andersonStatistic(mag)
	v := 1 / (1 + math.Exp(-10*(a2-0.3)))
	return map[string]extractor.Value{"AndersonDarling": extractor.Scalar(v)}, nil
}

// andersonStatistic is the A^2 test statistic against a normal
// distribution with mean and (sample) standard deviation estimated from
// the data.
func andersonStatistic(xs []float64) float64 {
	n := len(xs)
	s := sortedCopy(xs)
	mean := stat.Mean(s, nil)
	std := stat.StdDev(s, nil)

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	var sum float64
	for i := 0; i < n; i++ {
		zi := norm.CDF((s[i] - mean) / std)
		zr := norm.CDF((s[n-1-i] - mean) / std)
		sum += (2*float64(i) + 1) * (math.Log(zi) + math.Log(1-zr))
	}
	return -float64(n) - sum/float64(n)
}
