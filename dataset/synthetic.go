package dataset

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Synthetic data defaults.
const (
	syntheticSurvey = "synthetic"
	// DefaultSize is the number of observations per synthetic band.
	DefaultSize = 10000
)

var syntheticBands = []string{"B", "V"}

// CreateNormal synthesizes a two-band source with Gaussian magnitudes
// N(mu, sigma) over evenly spaced times on [0, 1].  Errors are Gaussian
// too, N(muErr, sigmaErr).
func CreateNormal(mu, sigma, muErr, sigmaErr float64, size int, seed uint64) *Data {
	rnd := rand.New(rand.NewSource(seed))
	magDist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rnd}
	errDist := distuv.Normal{Mu: muErr, Sigma: sigmaErr, Src: rnd}

	return createRandom(size, func(i int) (t, m, e float64) {
		return evenTime(i, size), magDist.Rand(), errDist.Rand()
	})
}

// CreateUniform synthesizes a two-band source with magnitudes uniform
// on [low, high) and Gaussian errors.
func CreateUniform(low, high, muErr, sigmaErr float64, size int, seed uint64) *Data {
	rnd := rand.New(rand.NewSource(seed))
	magDist := distuv.Uniform{Min: low, Max: high, Src: rnd}
	errDist := distuv.Normal{Mu: muErr, Sigma: sigmaErr, Src: rnd}

	return createRandom(size, func(i int) (t, m, e float64) {
		return evenTime(i, size), magDist.Rand(), errDist.Rand()
	})
}

// CreatePeriodic synthesizes a two-band source with a unit sinusoid
// sampled at uniform random times over 100 days, plus Gaussian noise
// scaled by the per-point error.
func CreatePeriodic(muErr, sigmaErr float64, size int, seed uint64) *Data {
	rnd := rand.New(rand.NewSource(seed))
	errDist := distuv.Normal{Mu: muErr, Sigma: sigmaErr, Src: rnd}
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}

	return createRandom(size, func(i int) (t, m, e float64) {
		t = 100 * rnd.Float64()
		e = errDist.Rand()
		m = math.Sin(2*math.Pi*t) + e*noise.Rand()
		return t, m, e
	})
}

func evenTime(i, size int) float64 {
	return float64(i) / float64(size-1)
}

func createRandom(size int, sample func(i int) (t, m, e float64)) *Data {
	d := &Data{
		Survey:      syntheticSurvey,
		Description: "light curve created with random numbers",
		Bands:       make(map[string]Band, len(syntheticBands)),
	}
	for _, name := range syntheticBands {
		b := Band{
			Time:      make([]float64, size),
			Magnitude: make([]float64, size),
			Error:     make([]float64, size),
		}
		for i := 0; i < size; i++ {
			b.Time[i], b.Magnitude[i], b.Error[i] = sample(i)
		}
		d.Bands[name] = b
	}
	return d
}
