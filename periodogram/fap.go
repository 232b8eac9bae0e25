package periodogram

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// FAPMethod selects a false-alarm probability estimator.
type FAPMethod string

const (
	// FAPSimple assumes fmax*baseline independent frequencies.
	FAPSimple FAPMethod = "simple"
	// FAPDavies is the Davies upper bound (Baluev 2008, eqn 5).
	FAPDavies FAPMethod = "davies"
	// FAPBaluev is the aliasing-free upper bound (Baluev 2008, eqn 6).
	FAPBaluev FAPMethod = "baluev"
	// FAPBootstrap estimates the distribution of the peak by
	// resampling the magnitudes with replacement.
	FAPBootstrap FAPMethod = "bootstrap"
)

// fapSingle is the single-frequency false alarm probability for the
// standard normalization: (1-z)^((N-3)/2).
func fapSingle(z float64, n int) float64 {
	nk := float64(n - 3)
	return math.Pow(1-z, 0.5*nk)
}

// gammaFactor is sqrt(2/N) * Gamma(N/2) / Gamma((N-1)/2), closely
// approximated by 1 - 0.75/N for large N.
func gammaFactor(n float64) float64 {
	lg1, _ := math.Lgamma(n / 2)
	lg2, _ := math.Lgamma((n - 1) / 2)
	return math.Sqrt(2/n) * math.Exp(lg1-lg2)
}

// tauDavies is the expected number of independent peaks above z
// (Baluev 2008, table 1, standard normalization).
func (p *Periodogram) tauDavies(z, fmax float64) float64 {
	n := float64(len(p.t))
	nh := n - 1
	nk := n - 3

	// effective baseline from the weighted variance of t
	var tbar, tvar float64
	for i, wi := range p.w {
		tbar += wi * p.t[i]
	}
	for i, wi := range p.w {
		d := p.t[i] - tbar
		tvar += wi * d * d
	}
	teff := math.Sqrt(4 * math.Pi * tvar)
	w := fmax * teff

	return gammaFactor(nh) * w *
		math.Pow(1-z, 0.5*(nk-1)) * math.Sqrt(0.5*nh*z)
}

// FAP estimates the probability that noise alone produces a periodogram
// peak of height z anywhere up to frequency fmax.  rng is required only
// for FAPBootstrap; nBootstraps <= 0 selects 1000 resamples.
func (p *Periodogram) FAP(z, fmax float64, method FAPMethod, rng *rand.Rand, nBootstraps int) (float64, error) {
	switch method {
	case FAPSimple:
		neff := fmax * p.Baseline()
		ps := 1 - fapSingle(z, len(p.t))
		return 1 - math.Pow(ps, neff), nil
	case FAPDavies:
		fap := fapSingle(z, len(p.t)) + p.tauDavies(z, fmax)
		return math.Min(fap, 1), nil
	case FAPBaluev, "":
		cdf := 1 - fapSingle(z, len(p.t))
		tau := p.tauDavies(z, fmax)
		return 1 - cdf*math.Exp(-tau), nil
	case FAPBootstrap:
		if rng == nil {
			return 0, fmt.Errorf("periodogram: bootstrap FAP needs a random source")
		}
		if nBootstraps <= 0 {
			nBootstraps = 1000
		}
		return p.fapBootstrap(z, fmax, rng, nBootstraps)
	default:
		return 0, fmt.Errorf("periodogram: unknown FAP method %q", method)
	}
}

// fapBootstrap resamples magnitudes (with their errors) with
// replacement, keeping the observation times fixed, and reports the
// fraction of resamples whose peak power exceeds z.
func (p *Periodogram) fapBootstrap(z, fmax float64, rng *rand.Rand, nBootstraps int) (float64, error) {
	n := len(p.t)
	y := make([]float64, n)
	var dy []float64
	if p.dy != nil {
		dy = make([]float64, n)
	}

	spp := 5.0
	baseline := p.Baseline()
	if baseline <= 0 {
		return 0, ErrNoBaseline
	}
	df := 1 / (baseline * spp)
	nf := 1 + int(math.Round(fmax/df))
	freqs := make([]float64, nf)
	for i := range freqs {
		freqs[i] = 0.5*df + float64(i)*df
	}

	exceed := 0
	for b := 0; b < nBootstraps; b++ {
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			y[i] = p.y[j]
			if dy != nil {
				dy[i] = p.dy[j]
			}
		}
		rp, err := New(p.t, y, dy)
		if err != nil {
			return 0, err
		}
		_, peak := Peak(rp.Power(freqs))
		if peak > z {
			exceed++
		}
	}
	return float64(exceed) / float64(nBootstraps), nil
}
