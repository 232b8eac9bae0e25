// Package periodogram implements the generalized (floating mean)
// Lomb-Scargle periodogram for unevenly sampled time series, with
// false-alarm probability estimates for the highest peak.
package periodogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrShortSeries is returned when the series is too short for a
	// meaningful periodogram.
	ErrShortSeries = errors.New("periodogram: series too short")

	// ErrNoBaseline is returned when all observation times coincide.
	ErrNoBaseline = errors.New("periodogram: zero time baseline")
)

// Periodogram evaluates Lomb-Scargle power for one series.  A nil error
// vector selects uniform weights.
type Periodogram struct {
	t, y, dy []float64
	w        []float64 // normalized weights, sum 1
	ybar     float64   // weighted mean of y
	yy       float64   // weighted variance of y about ybar
}

// New prepares a periodogram for the series (t, y) with optional
// per-point standard errors dy.
func New(t, y, dy []float64) (*Periodogram, error) {
	if len(t) != len(y) || (dy != nil && len(dy) != len(t)) {
		return nil, errors.New("periodogram: mismatched vector lengths")
	}
	if len(t) < 4 {
		return nil, ErrShortSeries
	}
	p := &Periodogram{t: t, y: y, dy: dy}

	p.w = make([]float64, len(t))
	if dy == nil {
		for i := range p.w {
			p.w[i] = 1
		}
	} else {
		for i, e := range dy {
			p.w[i] = 1 / (e * e)
		}
	}
	floats.Scale(1/floats.Sum(p.w), p.w)

	for i, wi := range p.w {
		p.ybar += wi * y[i]
	}
	for i, wi := range p.w {
		d := y[i] - p.ybar
		p.yy += wi * d * d
	}
	return p, nil
}

// Baseline returns the time span of the series.
func (p *Periodogram) Baseline() float64 {
	return floats.Max(p.t) - floats.Min(p.t)
}

// AutoFrequency builds a frequency grid sized to the series: frequency
// spacing 1/(samplesPerPeak*baseline) up to nyquistFactor times the
// average Nyquist frequency.
func (p *Periodogram) AutoFrequency(samplesPerPeak, nyquistFactor float64) ([]float64, error) {
	baseline := p.Baseline()
	if baseline <= 0 {
		return nil, ErrNoBaseline
	}
	df := 1 / (baseline * samplesPerPeak)
	avgNyquist := 0.5 * float64(len(p.t)) / baseline
	fmax := nyquistFactor * avgNyquist
	fmin := 0.5 * df

	n := 1 + int(math.Round((fmax-fmin)/df))
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = fmin + float64(i)*df
	}
	return freqs, nil
}

// Power evaluates the periodogram with standard normalization (values in
// [0, 1]) at each frequency.
func (p *Periodogram) Power(freqs []float64) []float64 {
	power := make([]float64, len(freqs))
	for i, f := range freqs {
		power[i] = p.powerAt(f)
	}
	return power
}

// powerAt computes the Zechmeister-Kurster floating-mean power at a
// single frequency.
func (p *Periodogram) powerAt(f float64) float64 {
	omega := 2 * math.Pi * f
	var c, s, yc, ys, cc, ss, cs float64
	for i, wi := range p.t {
		sin, cos := math.Sincos(omega * wi)
		w := p.w[i]
		dy := p.y[i] - p.ybar
		c += w * cos
		s += w * sin
		yc += w * dy * cos
		ys += w * dy * sin
		cc += w * cos * cos
		ss += w * sin * sin
		cs += w * cos * sin
	}
	// center the trigonometric sums on the weighted mean
	cc -= c * c
	ss -= s * s
	cs -= c * s

	d := cc*ss - cs*cs
	if d == 0 || p.yy == 0 {
		return 0
	}
	return (ss*yc*yc + cc*ys*ys - 2*cs*yc*ys) / (p.yy * d)
}

// Peak returns the index and value of the highest power.
func Peak(power []float64) (int, float64) {
	idx := floats.MaxIdx(power)
	return idx, power[idx]
}
