package extractors

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Signature folds the light curve at each trial period from the
// periodogram and histograms the phased curve on a phase by magnitude
// grid, normalized as a density.  The folded shape is a compact
// signature of the variability class.  The value concatenates one grid
// per trial period, phase major.
type Signature struct {
	PhaseBins int
	MagBins   int
}

// NewSignature returns the extractor with the standard 18x12 grid.
func NewSignature() *Signature { return &Signature{PhaseBins: 18, MagBins: 12} }

func (*Signature) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Dependencies: []string{"PeriodLS", "Amplitude"},
		Features:     []string{"Signature"},
	}
}

func (e *Signature) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	periods := in.Dep("PeriodLS")
	amplitude := in.Dep("Amplitude").Scalar()
	if len(mag) == 0 {
		return nil, ErrShortSeries
	}

	// magnitudes scaled to amplitude units, shifted to start at minimum
	minMag := floats.Min(mag)
	yaxis := make([]float64, len(mag))
	for i, m := range mag {
		yaxis[i] = (m - minMag) / amplitude
	}
	loc := floats.MinIdx(yaxis)

	out := make(extractor.Value, 0, len(periods)*e.PhaseBins*e.MagBins)
	phases := make([]float64, len(time))
	for _, p := range periods {
		for i, t := range time {
			ph := (t - time[loc]) / p
			ph -= float64(int(ph))
			if ph < 0 {
				ph++
			}
			phases[i] = ph
		}
		out = append(out, densityGrid(phases, yaxis, e.PhaseBins, e.MagBins)...)
	}
	return map[string]extractor.Value{"Signature": out}, nil
}

// Flatten names each cell ph_{j}_mag_{i} with the trial period index
// prefixed when the periodogram yielded more than one period.
func (e *Signature) Flatten(name string, value extractor.Value) []extractor.Named {
	cells := e.PhaseBins * e.MagBins
	nPeriods := len(value) / cells
	out := make([]extractor.Named, 0, len(value))
	for p := 0; p < nPeriods; p++ {
		for j := 0; j < e.PhaseBins; j++ {
			for i := 0; i < e.MagBins; i++ {
				cell := fmt.Sprintf("ph_%d_mag_%d", j, i)
				if nPeriods > 1 {
					cell = fmt.Sprintf("%d_%s", p, cell)
				}
				out = append(out, extractor.Named{
					Name:  cell,
					Value: value[p*cells+j*e.MagBins+i],
				})
			}
		}
	}
	return out
}

// densityGrid is a 2-d histogram over nx equal phase bins and ny equal
// magnitude bins, normalized so the cell values integrate to one.
func densityGrid(xs, ys []float64, nx, ny int) []float64 {
	xedges := linspace(floats.Min(xs), floats.Max(xs), nx+1)
	yedges := linspace(floats.Min(ys), floats.Max(ys), ny+1)
	counts := histogram2D(xs, ys, xedges, yedges)

	dx := (xedges[nx] - xedges[0]) / float64(nx)
	dy := (yedges[ny] - yedges[0]) / float64(ny)
	norm := float64(len(xs)) * dx * dy
	for i := range counts {
		counts[i] /= norm
	}
	return counts
}
