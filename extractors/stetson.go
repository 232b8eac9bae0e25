package extractors

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// StetsonJ is the Stetson (1996) J variability index over the two
// aligned bands: the signed square-root sum of paired residual products.
type StetsonJ struct{}

func (StetsonJ) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.AlignedMagnitude,
			lightcurve.AlignedMagnitude2,
			lightcurve.AlignedError,
			lightcurve.AlignedError2,
		},
		Features: []string{"StetsonJ"},
	}
}

func (StetsonJ) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	sigma, err := pairedResiduals(in)
	if err != nil {
		return nil, err
	}
	return map[string]extractor.Value{
		"StetsonJ": extractor.Scalar(stetsonJOf(sigma)),
	}, nil
}

// StetsonK is the Stetson robust kurtosis measure of the residuals
// about the error-weighted mean.  sqrt(2/pi) = 0.798 for a Gaussian.
type StetsonK struct{}

func (StetsonK) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Error,
		},
		Features: []string{"StetsonK"},
	}
}

func (StetsonK) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	err := in.Series(lightcurve.Error)
	if len(mag) < 2 {
		return nil, ErrShortSeries
	}
	delta := stetsonDelta(mag, err, invVarMean(mag, err))
	return map[string]extractor.Value{
		"StetsonK": extractor.Scalar(stetsonKOf(delta)),
	}, nil
}

// StetsonKAC yields StetsonK_AC: Stetson K applied to the slotted
// autocorrelation function of the light curve.
type StetsonKAC struct {
	// Tau is the slot size in days; zero selects the adaptive slot.
	Tau float64
}

// NewStetsonKAC returns the extractor with the standard one day slot.
func NewStetsonKAC() *StetsonKAC { return &StetsonKAC{Tau: 1} }

func (*StetsonKAC) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time, lightcurve.Error,
		},
		Features: []string{"StetsonK_AC"},
	}
}

func (e *StetsonKAC) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	sc, err := slottedStart(mag, time, e.Tau)
	if err != nil {
		return nil, err
	}
	ac := sc.sac
	n := float64(len(ac))
	if n < 2 {
		return nil, ErrShortSeries
	}

	mean := stat.Mean(ac, nil)
	std := popStd(ac)
	k := math.Sqrt(n / (n - 1))
	sigmap := make([]float64, len(ac))
	for i, v := range ac {
		sigmap[i] = k * (v - mean) / std
	}
	return map[string]extractor.Value{
		"StetsonK_AC": extractor.Scalar(stetsonKOf(sigmap)),
	}, nil
}

// StetsonL combines J and K into the synchronous variability index
// L = J*K/0.798 over the aligned bands.
type StetsonL struct{}

func (StetsonL) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.AlignedMagnitude,
			lightcurve.AlignedMagnitude2,
			lightcurve.AlignedError,
			lightcurve.AlignedError2,
		},
		Features: []string{"StetsonL"},
	}
}

func (StetsonL) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	sigma, err := pairedResiduals(in)
	if err != nil {
		return nil, err
	}
	j := stetsonJOf(sigma)
	k := stetsonKOf(sigma)
	return map[string]extractor.Value{
		"StetsonL": extractor.Scalar(j * k / 0.798),
	}, nil
}

// pairedResiduals multiplies the unit-variance residuals of the two
// aligned bands point by point.
func pairedResiduals(in extractor.Input) ([]float64, error) {
	m1 := in.Series(lightcurve.AlignedMagnitude)
	m2 := in.Series(lightcurve.AlignedMagnitude2)
	e1 := in.Series(lightcurve.AlignedError)
	e2 := in.Series(lightcurve.AlignedError2)
	if len(m1) < 2 {
		return nil, ErrShortSeries
	}

	d1 := stetsonDelta(m1, e1, invVarMean(m1, e1))
	d2 := stetsonDelta(m2, e2, invVarMean(m2, e2))
	sigma := make([]float64, len(d1))
	for i := range d1 {
		sigma[i] = d1[i] * d2[i]
	}
	return sigma, nil
}

func stetsonJOf(sigma []float64) float64 {
	var sum float64
	for _, s := range sigma {
		sign := 1.0
		if s < 0 {
			sign = -1
		}
		sum += sign * math.Sqrt(math.Abs(s))
	}
	return sum / float64(len(sigma))
}

func stetsonKOf(delta []float64) float64 {
	var absSum, sqSum float64
	for _, d := range delta {
		absSum += math.Abs(d)
		sqSum += d * d
	}
	n := float64(len(delta))
	return absSum / math.Sqrt(n) / math.Sqrt(sqSum)
}
