package extractors

import (
	"fmt"
	"math"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// FluxPercentileRatio characterizes the sorted magnitude distribution as
// the ratio of a mid percentile span to the 5-95 span F_{5,95}
// (Richards et al. 2011).  Mid selects the feature:
//
//	20: F_{40,60}/F_{5,95}    (0.154 for a normal distribution)
//	35: F_{32.5,67.5}/F_{5,95} (0.275)
//	50: F_{25,75}/F_{5,95}     (0.410)
//	65: F_{17.5,82.5}/F_{5,95} (0.568)
//	80: F_{10,90}/F_{5,95}     (0.779)
type FluxPercentileRatio struct {
	Mid int
}

func (e FluxPercentileRatio) name() string {
	return fmt.Sprintf("FluxPercentileRatioMid%d", e.Mid)
}

func (e FluxPercentileRatio) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{e.name()},
	}
}

func (e FluxPercentileRatio) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	lo := 50 - float64(e.Mid)/2
	hi := 50 + float64(e.Mid)/2

	mag := in.Series(lightcurve.Magnitude)
	s := sortedCopy(mag)
	n := len(s)

	iLo, err1 := ceilIndex(lo/100, n)
	iHi, err2 := ceilIndex(hi/100, n)
	i5, err3 := ceilIndex(0.05, n)
	i95, err4 := ceilIndex(0.95, n)
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			return nil, err
		}
	}

	span595 := s[i95] - s[i5]
	ratio := (s[iHi] - s[iLo]) / span595
	return map[string]extractor.Value{e.name(): extractor.Scalar(ratio)}, nil
}

// ceilIndex maps a fraction to the index ceil(f*n), erroring when it
// falls off the end of the sorted sample.
func ceilIndex(f float64, n int) (int, error) {
	i := int(math.Ceil(f * float64(n)))
	if i >= n {
		return 0, ErrShortSeries
	}
	return i, nil
}

// PercentDifferenceFluxPercentile is the ratio of F_{5,95} over the
// median magnitude (Richards et al. 2011).
type PercentDifferenceFluxPercentile struct{}

func (PercentDifferenceFluxPercentile) Info() extractor.Info {
	return extractor.Info{
		Data:     []lightcurve.Kind{lightcurve.Magnitude},
		Features: []string{"PercentDifferenceFluxPercentile"},
	}
}

func (PercentDifferenceFluxPercentile) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	s := sortedCopy(mag)
	n := len(s)

	i5, err1 := ceilIndex(0.05, n)
	i95, err2 := ceilIndex(0.95, n)
	if err1 != nil {
		return nil, err1
	}
	if err2 != nil {
		return nil, err2
	}
	v := (s[i95] - s[i5]) / median(mag)
	return map[string]extractor.Value{
		"PercentDifferenceFluxPercentile": extractor.Scalar(v),
	}, nil
}
