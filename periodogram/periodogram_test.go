package periodogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// sine samples a noisy unit sinusoid at random times over the span.
func sine(n int, freq, span float64, rnd *rand.Rand) (t, y, dy []float64) {
	t = make([]float64, n)
	y = make([]float64, n)
	dy = make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = span * rnd.Float64()
		y[i] = math.Sin(2*math.Pi*freq*t[i]) + 0.1*rnd.NormFloat64()
		dy[i] = 0.1
	}
	return t, y, dy
}

func TestNewRejectsShortSeries(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, []float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, ErrShortSeries)

	_, err = New([]float64{1, 2}, []float64{1}, nil)
	assert.Error(t, err)
}

func TestAutoFrequencyGrid(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	ts, y, _ := sine(100, 0.5, 50, rnd)
	p, err := New(ts, y, nil)
	require.NoError(t, err)

	freqs, err := p.AutoFrequency(5, 1)
	require.NoError(t, err)
	require.NotEmpty(t, freqs)

	df := 1 / (p.Baseline() * 5)
	assert.InDelta(t, 0.5*df, freqs[0], 1e-12)
	for i := 1; i < len(freqs); i++ {
		assert.InDelta(t, df, freqs[i]-freqs[i-1], 1e-9)
	}
}

func TestPeakRecovery(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	ts, y, dy := sine(500, 0.25, 100, rnd)

	p, err := New(ts, y, dy)
	require.NoError(t, err)
	freqs, err := p.AutoFrequency(5, 1)
	require.NoError(t, err)

	idx, peak := Peak(p.Power(freqs))
	assert.InDelta(t, 0.25, freqs[idx], 0.01)
	assert.Greater(t, peak, 0.9)
}

func TestPowerBoundedOnNoise(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	n := 200
	ts := make([]float64, n)
	y := make([]float64, n)
	for i := range ts {
		ts[i] = 100 * rnd.Float64()
		y[i] = rnd.NormFloat64()
	}
	p, err := New(ts, y, nil)
	require.NoError(t, err)
	freqs, err := p.AutoFrequency(5, 1)
	require.NoError(t, err)

	for _, pw := range p.Power(freqs) {
		assert.GreaterOrEqual(t, pw, 0.0)
		assert.LessOrEqual(t, pw, 1.0+1e-9)
	}
}

func TestFAPMethods(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	ts, y, dy := sine(300, 0.25, 100, rnd)
	p, err := New(ts, y, dy)
	require.NoError(t, err)

	for _, m := range []FAPMethod{FAPSimple, FAPDavies, FAPBaluev} {
		t.Run(string(m), func(t *testing.T) {
			strong, err := p.FAP(0.95, 2, m, nil, 0)
			require.NoError(t, err)
			weak, err := p.FAP(0.05, 2, m, nil, 0)
			require.NoError(t, err)

			assert.Less(t, strong, 1e-6)
			assert.LessOrEqual(t, weak, 1.0)
			assert.Greater(t, weak, strong)
		})
	}
}

func TestFAPBaluevDefault(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	ts, y, _ := sine(100, 0.25, 100, rnd)
	p, err := New(ts, y, nil)
	require.NoError(t, err)

	def, err := p.FAP(0.5, 2, "", nil, 0)
	require.NoError(t, err)
	baluev, err := p.FAP(0.5, 2, FAPBaluev, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, baluev, def)
}

func TestFAPBootstrap(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	ts, y, dy := sine(60, 0.25, 20, rnd)
	p, err := New(ts, y, dy)
	require.NoError(t, err)

	_, err = p.FAP(0.9, 1, FAPBootstrap, nil, 10)
	assert.Error(t, err) // needs a random source

	fap, err := p.FAP(0.99, 1, FAPBootstrap, rnd, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fap, 0.0)
	assert.LessOrEqual(t, fap, 1.0)
}

func TestFAPUnknownMethod(t *testing.T) {
	rnd := rand.New(rand.NewSource(19))
	ts, y, _ := sine(50, 0.25, 20, rnd)
	p, err := New(ts, y, nil)
	require.NoError(t, err)

	_, err = p.FAP(0.5, 1, "guess", nil, 0)
	assert.Error(t, err)
}
