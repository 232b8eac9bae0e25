package extractors

import (
	"fmt"
	"math"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// DeltamDeltat maps a light curve onto a fixed grid of (delta time,
// delta magnitude) bins over all observation pairs (Mahabal et al.
// 2017).  Each cell holds the pair count rescaled to 0..255 so curves
// of different lengths are comparable.  The value is the flattened
// grid, delta-time major.
type DeltamDeltat struct {
	dtEdges []float64
	dmEdges []float64
}

// NewDeltamDeltat returns the extractor with the standard bin edges:
// delta time 0 then 23 log-spaced edges over 1e-3..10^3.5 days, delta
// magnitude symmetric log-spaced edges over -10..10 with a zero edge.
func NewDeltamDeltat() *DeltamDeltat {
	dt := append([]float64{0}, logspace(-3, 3.5, 23)...)

	neg := logspace(1, -1, 12)
	for i := range neg {
		neg[i] = -neg[i]
	}
	dm := append(neg, 0)
	dm = append(dm, logspace(-1, 1, 12)...)

	return &DeltamDeltat{dtEdges: dt, dmEdges: dm}
}

func (*DeltamDeltat) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{"DeltamDeltat"},
	}
}

func (e *DeltamDeltat) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	n := len(time)
	if n < 2 {
		return nil, ErrShortSeries
	}

	nPairs := n * (n - 1) / 2
	dts := make([]float64, 0, nPairs)
	dms := make([]float64, 0, nPairs)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			dt := time[j] - time[i]
			dm := mag[j] - mag[i]
			if dt < 0 {
				dt, dm = -dt, -dm
			}
			dts = append(dts, dt)
			dms = append(dms, dm)
		}
	}

	counts := histogram2D(dts, dms, e.dtEdges, e.dmEdges)
	for i, c := range counts {
		counts[i] = math.Trunc(255*c/float64(nPairs) + 0.999)
	}
	return map[string]extractor.Value{"DeltamDeltat": counts}, nil
}

// Flatten names each grid cell dt_{j}_dm_{i} after its bin pair
// instead of the positional default.
func (e *DeltamDeltat) Flatten(name string, value extractor.Value) []extractor.Named {
	nDm := len(e.dmEdges) - 1
	out := make([]extractor.Named, len(value))
	for k, v := range value {
		out[k] = extractor.Named{
			Name:  fmt.Sprintf("dt_%d_dm_%d", k/nDm, k%nDm),
			Value: v,
		}
	}
	return out
}
