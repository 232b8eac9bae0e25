package extractors

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
	"github.com/astrolab/featex/periodogram"
)

// LombScargle searches the generalized Lomb-Scargle periodogram for the
// best trial periods and characterizes the light curve folded at each:
//
//	PeriodLS    the trial periods, best peak first
//	Period_fit  false alarm probability of each peak
//	Psi_CS      Rcs of the folded curve (Kim et al. 2011)
//	Psi_eta     Eta_e of the folded curve (Kim et al. 2014)
type LombScargle struct {
	// NPeriods is how many periodogram peaks to keep.
	NPeriods int
	// SamplesPerPeak and NyquistFactor size the frequency grid.
	SamplesPerPeak float64
	NyquistFactor  float64
	// FAP selects the false alarm estimator; empty means Baluev.
	FAP periodogram.FAPMethod
}

// NewLombScargle returns the extractor with the standard search: three
// periods over a grid oversampled five times per peak, reaching one
// hundred times the average Nyquist frequency.
func NewLombScargle() *LombScargle {
	return &LombScargle{NPeriods: 3, SamplesPerPeak: 5, NyquistFactor: 100}
}

func (*LombScargle) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{"PeriodLS", "Period_fit", "Psi_CS", "Psi_eta"},
	}
}

func (e *LombScargle) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)

	pg, err := periodogram.New(time, mag, nil)
	if err != nil {
		return nil, err
	}
	freqs, err := pg.AutoFrequency(e.SamplesPerPeak, e.NyquistFactor)
	if err != nil {
		return nil, err
	}
	power := pg.Power(freqs)
	fmax := freqs[len(freqs)-1]

	best := topIndices(power, e.NPeriods)
	periods := make(extractor.Value, len(best))
	fit := make(extractor.Value, len(best))
	cs := make(extractor.Value, len(best))
	eta := make(extractor.Value, len(best))
	for i, idx := range best {
		periods[i] = 1 / freqs[idx]
		fap, err := pg.FAP(power[idx], fmax, e.FAP, in.Rand, 0)
		if err != nil {
			return nil, err
		}
		fit[i] = fap
		cs[i], eta[i] = foldedCSEta(time, mag, periods[i])
	}

	return map[string]extractor.Value{
		"PeriodLS":   periods,
		"Period_fit": fit,
		"Psi_CS":     cs,
		"Psi_eta":    eta,
	}, nil
}

// topIndices returns the indices of the n largest values, largest first.
func topIndices(xs []float64, n int) []int {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] > xs[idx[b]] })
	if n > len(idx) {
		n = len(idx)
	}
	return idx[:n]
}

// foldedCSEta folds the curve over two periods and computes the range
// cumulative sum and the eta variability index of the phased magnitudes.
func foldedCSEta(time, mag []float64, period float64) (cs, eta float64) {
	n := len(time)
	phase := make([]float64, n)
	for i, t := range time {
		p2 := 2 * period
		ph := t / p2
		ph -= float64(int(ph))
		phase[i] = ph
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return phase[order[a]] < phase[order[b]] })
	folded := make([]float64, n)
	for i, j := range order {
		folded[i] = mag[j]
	}

	cs = rangeCumSum(folded)

	sigma2 := stat.PopVariance(folded, nil)
	var sq float64
	for _, d := range diff(folded) {
		sq += d * d
	}
	eta = sq / (float64(n-1) * sigma2)
	return cs, eta
}
