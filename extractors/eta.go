package extractors

import (
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// EtaE yields Eta_e, the von Neumann variability index generalized for
// uneven sampling: the ratio of the mean square of weighted successive
// differences to the variance, with weights 1/dt^2.  Close to 2 for
// uncorrelated Gaussian magnitudes.
type EtaE struct{}

func (EtaE) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{"Eta_e"},
	}
}

func (EtaE) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	if len(mag) < 2 {
		return nil, ErrShortSeries
	}
	v := etaIndex(time, mag)
	return map[string]extractor.Value{"Eta_e": extractor.Scalar(v)}, nil
}

// EtaColor is Eta_e computed on the color curve (difference of the two
// aligned bands).
type EtaColor struct{}

func (EtaColor) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.AlignedMagnitude,
			lightcurve.AlignedTime,
			lightcurve.AlignedMagnitude2,
		},
		Features: []string{"Eta_color"},
	}
}

func (EtaColor) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	m1 := in.Series(lightcurve.AlignedMagnitude)
	m2 := in.Series(lightcurve.AlignedMagnitude2)
	time := in.Series(lightcurve.AlignedTime)
	if len(m1) < 2 {
		return nil, ErrShortSeries
	}
	color := make([]float64, len(m1))
	for i := range m1 {
		color[i] = m1[i] - m2[i]
	}
	v := etaIndex(time, color)
	return map[string]extractor.Value{"Eta_color": extractor.Scalar(v)}, nil
}

func etaIndex(time, series []float64) float64 {
	n := len(series)
	sigma2 := stat.PopVariance(series, nil)

	var s1, s2, wSum float64
	for i := 0; i+1 < n; i++ {
		dt := time[i+1] - time[i]
		w := 1 / (dt * dt)
		d := series[i+1] - series[i]
		s1 += w * d * d
		s2 += w
		wSum += w
	}
	wMean := wSum / float64(n-1)
	span := time[n-1] - time[0]
	return wMean * span * span * s1 / (sigma2 * s2 * float64(n) * float64(n))
}
