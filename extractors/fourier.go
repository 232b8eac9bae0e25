package extractors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
	"github.com/astrolab/featex/periodogram"
)

// FourierComponents fits the light curve as a harmonic sum of sinusoids
// (Richards et al. 2011, following Debosscher et al. 2007).  Three test
// frequencies are found iteratively: take the Lomb-Scargle peak, fit
// four harmonics of it by least squares, subtract the model and repeat
// on the whitened residuals.  Each FreqN_harmonics value packs the four
// harmonic amplitudes followed by the four phases, made relative to the
// phase of the first component of the first frequency.
type FourierComponents struct {
	// SamplesPerPeak and NyquistFactor size the periodogram grid used
	// for the peak searches.
	SamplesPerPeak float64
	NyquistFactor  float64
}

// NewFourierComponents returns the extractor with the standard grid.
func NewFourierComponents() *FourierComponents {
	return &FourierComponents{SamplesPerPeak: 5, NyquistFactor: 100}
}

const (
	fourierFreqs     = 3
	fourierHarmonics = 4
)

func (*FourierComponents) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time, lightcurve.Error,
		},
		Optional: []lightcurve.Kind{lightcurve.Error},
		Features: []string{
			"Freq1_harmonics", "Freq2_harmonics", "Freq3_harmonics",
		},
	}
}

func (e *FourierComponents) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	errs := in.Series(lightcurve.Error)

	t0 := floats.Min(time)
	t := make([]float64, len(time))
	for i, v := range time {
		t[i] = v - t0
	}
	resid := append([]float64(nil), mag...)

	amps := make([][]float64, fourierFreqs)
	phases := make([][]float64, fourierFreqs)
	for i := 0; i < fourierFreqs; i++ {
		pg, err := periodogram.New(t, resid, errs)
		if err != nil {
			return nil, err
		}
		freqs, err := pg.AutoFrequency(e.SamplesPerPeak, e.NyquistFactor)
		if err != nil {
			return nil, err
		}
		peak, _ := periodogram.Peak(pg.Power(freqs))
		fundamental := freqs[peak]

		// each harmonic is fit against the residuals as they stood
		// when this frequency was found
		target := append([]float64(nil), resid...)
		amps[i] = make([]float64, fourierHarmonics)
		phases[i] = make([]float64, fourierHarmonics)
		for j := 0; j < fourierHarmonics; j++ {
			f := float64(j+1) * fundamental
			a, b, c, err := fitSinusoid(t, target, f)
			if err != nil {
				return nil, err
			}
			amps[i][j] = math.Sqrt(a*a + b*b)
			phases[i][j] = math.Atan(b / a)
			for k, tv := range t {
				omega := 2 * math.Pi * f * tv
				resid[k] -= a*math.Sin(omega) + b*math.Cos(omega) + c
			}
		}
	}

	out := make(map[string]extractor.Value, fourierFreqs)
	for i := 0; i < fourierFreqs; i++ {
		v := make(extractor.Value, 0, 2*fourierHarmonics)
		v = append(v, amps[i]...)
		for _, ph := range phases[i] {
			v = append(v, ph-phases[i][0])
		}
		out[fmt.Sprintf("Freq%d_harmonics", i+1)] = v
	}
	return out, nil
}

// Flatten names the packed halves FreqN_harmonics_amplitude_j and
// FreqN_harmonics_rel_phase_j.
func (*FourierComponents) Flatten(name string, value extractor.Value) []extractor.Named {
	out := make([]extractor.Named, 0, len(value))
	for j := 0; j < fourierHarmonics; j++ {
		out = append(out, extractor.Named{
			Name:  fmt.Sprintf("%s_amplitude_%d", name, j),
			Value: value[j],
		})
		out = append(out, extractor.Named{
			Name:  fmt.Sprintf("%s_rel_phase_%d", name, j),
			Value: value[fourierHarmonics+j],
		})
	}
	return out
}

// fitSinusoid solves y ~ a*sin(2*pi*f*t) + b*cos(2*pi*f*t) + c by
// linear least squares.
func fitSinusoid(t, y []float64, f float64) (a, b, c float64, err error) {
	n := len(t)
	design := mat.NewDense(n, 3, nil)
	for i, tv := range t {
		sin, cos := math.Sincos(2 * math.Pi * f * tv)
		design.Set(i, 0, sin)
		design.Set(i, 1, cos)
		design.Set(i, 2, 1)
	}
	var qr mat.QR
	qr.Factorize(design)

	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, mat.NewVecDense(n, y)); err != nil {
		return 0, 0, 0, err
	}
	return coef.AtVec(0), coef.AtVec(1), coef.AtVec(2), nil
}
