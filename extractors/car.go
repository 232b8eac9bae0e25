package extractors

import (
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// carEpsilon keeps the per-sample likelihood term away from log(0).
const carEpsilon = 1e-300

// CAR fits a continuous-time first-order autoregressive process
// (Brockwell & Davis 2002) to the light curve and yields CAR_sigma,
// CAR_tau and CAR_mean.  Tau is the relaxation time of the process and
// sigma its short-timescale variability; the mean magnitude of the
// curve equals b*tau, so CAR_mean reports mean(m)/tau.
type CAR struct{}

// NewCAR returns the extractor with the Nelder-Mead fit.
func NewCAR() *CAR { return &CAR{} }

func (*CAR) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time, lightcurve.Error,
		},
		Features: []string{"CAR_sigma", "CAR_tau", "CAR_mean"},
	}
}

func (e *CAR) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	errs := in.Series(lightcurve.Error)
	if len(mag) < 2 {
		return nil, ErrShortSeries
	}

	errVars := make([]float64, len(errs))
	for i, v := range errs {
		errVars[i] = v * v
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			return carNegLogLik(p[0], p[1], time, mag, errVars)
		},
	}
	x0 := []float64{10, 0.5}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})

	sigma, tau := x0[0], x0[1]
	if err == nil && result != nil {
		sigma, tau = result.X[0], result.X[1]
	}
	mean := stat.Mean(mag, nil) / tau

	return map[string]extractor.Value{
		"CAR_sigma": extractor.Scalar(sigma),
		"CAR_tau":   extractor.Scalar(tau),
		"CAR_mean":  extractor.Scalar(mean),
	}, nil
}

// carNegLogLik is the negative log likelihood of the CAR(1) Kalman
// recursion for parameters (sigma, tau).  Parameters outside (0,100)
// are rejected with +Inf so the simplex stays in bounds.
func carNegLogLik(sigma, tau float64, t, x, errVars []float64) float64 {
	if sigma <= 0 || sigma >= 100 || tau <= 0 || tau >= 100 {
		return math.Inf(1)
	}

	b := stat.Mean(x, nil) / tau
	omega0 := tau * sigma * sigma / 2

	omega := omega0
	xHat := 0.0
	xAst := x[0] - b*tau

	var loglik float64
	for i := 1; i < len(x); i++ {
		a := math.Exp(-(t[i] - t[i-1]) / tau)
		gain := omega / (omega + errVars[i-1])

		xAstNext := x[i] - b*tau
		xHat = a*xHat + a*gain*(xAst-xHat)
		omega = omega0*(1-a*a) + a*a*omega*(1-gain)
		xAst = xAstNext

		v := omega + errVars[i]
		resid := xHat - xAst
		loglik += math.Log(math.Exp(-0.5*resid*resid/v)/math.Sqrt(2*math.Pi*v) + carEpsilon)

		if math.IsInf(loglik, -1) {
			return math.Inf(1)
		}
	}
	return -loglik
}
