package featex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/astrolab/featex/extractor"
	_ "github.com/astrolab/featex/extractors"
	"github.com/astrolab/featex/lightcurve"
)

func normalLC(n int, seed uint64) *lightcurve.LightCurve {
	rnd := rand.New(rand.NewSource(seed))
	mag := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}

	t := make([]float64, n)
	m := make([]float64, n)
	e := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = float64(i)
		m[i] = mag.Rand()
		e[i] = 0.005
	}
	return lightcurve.New().
		Set(lightcurve.Time, t).
		Set(lightcurve.Magnitude, m).
		Set(lightcurve.Error, e)
}

func TestOnlySelectsFeatures(t *testing.T) {
	fs, err := New(
		WithData(lightcurve.Time, lightcurve.Magnitude, lightcurve.Error),
		WithOnly("Mean", "Std", "Beyond1Std"),
	)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Mean", "Std", "Beyond1Std"}, fs.Features())

	set, err := fs.Extract(context.Background(), normalLC(5000, 3))
	require.NoError(t, err)
	assert.ElementsMatch(t, fs.Features(), set.Names())
	assert.InDelta(t, 0, set.Scalar("Mean"), 0.05)
	assert.InDelta(t, 1, set.Scalar("Std"), 0.05)
	assert.InDelta(t, 0.317, set.Scalar("Beyond1Std"), 0.02)
}

func TestUnknownFeatureErrors(t *testing.T) {
	_, err := New(WithOnly("Luminosity"))
	assert.ErrorIs(t, err, ErrUnknownFeature)

	_, err = New(WithExclude("Luminosity"))
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestOnlyNeedsData(t *testing.T) {
	// Beyond1Std reads magnitude and error; declaring only magnitude
	// makes it unservable.
	_, err := New(
		WithData(lightcurve.Magnitude),
		WithOnly("Beyond1Std"),
	)
	assert.ErrorIs(t, err, ErrDataRequired)
}

func TestExcludeRemovesFeature(t *testing.T) {
	fs, err := New(
		WithData(lightcurve.Magnitude),
		WithOnly("Mean", "Std"),
	)
	require.NoError(t, err)

	fs2, err := New(
		WithData(lightcurve.Magnitude),
		WithOnly("Mean", "Std"),
		WithExclude("Std"),
	)
	require.NoError(t, err)
	assert.Len(t, fs.Features(), 2)
	assert.Equal(t, []string{"Mean"}, fs2.Features())
}

func TestExcludeEverythingErrors(t *testing.T) {
	_, err := New(
		WithData(lightcurve.Magnitude),
		WithOnly("Mean"),
		WithExclude("Mean"),
	)
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestDataFiltersPlan(t *testing.T) {
	fs, err := New(WithData(lightcurve.Magnitude))
	require.NoError(t, err)
	feats := fs.Features()
	assert.Contains(t, feats, "Mean")
	assert.Contains(t, feats, "Amplitude")
	assert.NotContains(t, feats, "Beyond1Std") // needs error
	assert.NotContains(t, feats, "Color")      // needs aligned bands
}

// depExtractor computes a feature from another extractor's output, for
// exercising dependency closure without the heavy catalogue.
type depExtractor struct {
	nfo extractor.Info
	fn  func(in extractor.Input) float64
}

func (d *depExtractor) Info() extractor.Info { return d.nfo }

func (d *depExtractor) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	name := d.nfo.Features[0]
	return map[string]extractor.Value{name: extractor.Scalar(d.fn(in))}, nil
}

func newTestRegistry(t *testing.T) *extractor.Registry {
	t.Helper()
	r := extractor.NewRegistry()
	require.NoError(t, r.Register(func() extractor.Extractor {
		return &depExtractor{
			nfo: extractor.Info{
				Data:     []lightcurve.Kind{lightcurve.Magnitude},
				Features: []string{"First"},
			},
			fn: func(in extractor.Input) float64 {
				return in.Series(lightcurve.Magnitude)[0]
			},
		}
	}))
	require.NoError(t, r.Register(func() extractor.Extractor {
		return &depExtractor{
			nfo: extractor.Info{
				Data:         []lightcurve.Kind{lightcurve.Magnitude},
				Dependencies: []string{"First"},
				Features:     []string{"FirstPlusOne"},
			},
			fn: func(in extractor.Input) float64 {
				return in.Dep("First").Scalar() + 1
			},
		}
	}))
	return r
}

func TestDependencyClosure(t *testing.T) {
	fs, err := New(
		WithRegistry(newTestRegistry(t)),
		WithData(lightcurve.Magnitude),
		WithOnly("FirstPlusOne"),
	)
	require.NoError(t, err)
	// the dependency is computed but not reported
	assert.Equal(t, []string{"FirstPlusOne"}, fs.Features())

	lc := lightcurve.New().Set(lightcurve.Magnitude, []float64{41})
	set, err := fs.Extract(context.Background(), lc)
	require.NoError(t, err)
	assert.Equal(t, 42.0, set.Scalar("FirstPlusOne"))
	assert.Nil(t, set.Value("First"))
}

func TestDependencyNeedsData(t *testing.T) {
	_, err := New(
		WithRegistry(newTestRegistry(t)),
		WithData(lightcurve.Time),
		WithOnly("FirstPlusOne"),
	)
	assert.ErrorIs(t, err, ErrDataRequired)
}

func TestWithExtractor(t *testing.T) {
	fs, err := New(
		WithData(lightcurve.Magnitude),
		WithOnly("Doubled"),
		WithExtractor(func() extractor.Extractor {
			return &depExtractor{
				nfo: extractor.Info{
					Data:     []lightcurve.Kind{lightcurve.Magnitude},
					Features: []string{"Doubled"},
				},
				fn: func(in extractor.Input) float64 {
					return 2 * in.Series(lightcurve.Magnitude)[0]
				},
			}
		}),
	)
	require.NoError(t, err)

	lc := lightcurve.New().Set(lightcurve.Magnitude, []float64{21})
	set, err := fs.Extract(context.Background(), lc)
	require.NoError(t, err)
	assert.Equal(t, 42.0, set.Scalar("Doubled"))
}

func TestExtractMissingVector(t *testing.T) {
	fs, err := New(
		WithData(lightcurve.Magnitude, lightcurve.Error),
		WithOnly("Beyond1Std"),
	)
	require.NoError(t, err)

	lc := lightcurve.New().Set(lightcurve.Magnitude, []float64{1, 2, 3})
	_, err = fs.Extract(context.Background(), lc)
	assert.ErrorIs(t, err, ErrMissingVector)
}

func TestExtractEmptyVector(t *testing.T) {
	fs, err := New(
		WithData(lightcurve.Magnitude),
		WithOnly("Q31", "MedianAbsDev"),
	)
	require.NoError(t, err)

	// present but empty vectors are as unusable as absent ones
	lc := lightcurve.New().Set(lightcurve.Magnitude, []float64{})
	_, err = fs.Extract(context.Background(), lc)
	assert.ErrorIs(t, err, ErrMissingVector)
}

func TestWithDataUnknownKind(t *testing.T) {
	_, err := New(WithData(lightcurve.Kind("brightness")))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRepeatableSeed(t *testing.T) {
	lc := normalLC(500, 5)
	opts := []Option{
		WithData(lightcurve.Time, lightcurve.Magnitude, lightcurve.Error),
		WithOnly("Mean", "Std", "MedianAbsDev"),
		WithRandSeed(3),
		WithWorkers(2),
	}
	fs, err := New(opts...)
	require.NoError(t, err)

	a, err := fs.Extract(context.Background(), lc)
	require.NoError(t, err)
	b, err := fs.Extract(context.Background(), lc)
	require.NoError(t, err)
	for _, name := range a.Names() {
		assert.Equal(t, a.Value(name), b.Value(name), name)
	}
}
