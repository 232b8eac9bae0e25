package extractors

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// StructureFunctions yields the three structure function indices
// (Simonetti et al. 1984): the slopes relating the log structure
// functions of order 1, 2 and 3 of the light curve, computed on a
// linear interpolation of the magnitudes onto a uniform time grid.
type StructureFunctions struct{}

func (StructureFunctions) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{
			"StructureFunction_index_21",
			"StructureFunction_index_31",
			"StructureFunction_index_32",
		},
	}
}

func (StructureFunctions) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	if len(mag) < 2 {
		return nil, ErrShortSeries
	}

	const np = 100
	var pl interp.PiecewiseLinear
	if err := pl.Fit(time, mag); err != nil {
		return nil, err
	}
	grid := linspace(floats.Min(time), floats.Max(time), np)
	magInt := make([]float64, np)
	for i, t := range grid {
		magInt[i] = pl.Predict(t)
	}

	var sf1, sf2, sf3 []float64
	for tau := 1; tau < np; tau++ {
		var s1, s2, s3 float64
		for i := 0; i < np-tau; i++ {
			d := math.Abs(magInt[i] - magInt[i+tau])
			s1 += d
			s2 += d * d
			s3 += d * d * d
		}
		n := float64(np - tau)
		sf1 = append(sf1, s1/n)
		sf2 = append(sf2, s2/n)
		sf3 = append(sf3, s3/n)
	}

	log1 := logNonZero(sf1)
	log2 := logNonZero(sf2)
	log3 := logNonZero(sf3)

	m21 := slopeOrNaN(log1, log2)
	m31 := slopeOrNaN(log1, log3)
	m32 := slopeOrNaN(log2, log3)

	return map[string]extractor.Value{
		"StructureFunction_index_21": extractor.Scalar(m21),
		"StructureFunction_index_31": extractor.Scalar(m31),
		"StructureFunction_index_32": extractor.Scalar(m32),
	}, nil
}

// logNonZero drops leading and trailing zeros then takes log10.
func logNonZero(xs []float64) []float64 {
	lo, hi := 0, len(xs)
	for lo < hi && xs[lo] == 0 {
		lo++
	}
	for hi > lo && xs[hi-1] == 0 {
		hi--
	}
	out := make([]float64, hi-lo)
	for i, v := range xs[lo:hi] {
		out[i] = math.Log10(v)
	}
	return out
}

func slopeOrNaN(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return math.NaN()
	}
	_, slope := stat.LinearRegression(x[:n], y[:n], nil, false)
	return slope
}
