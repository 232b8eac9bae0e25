package extractors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// run extracts with a fixed random source and fails on error.
func run(t *testing.T, ext extractor.Extractor, data map[lightcurve.Kind][]float64) map[string]extractor.Value {
	t.Helper()
	out, err := extractor.ExtractAndValidate(ext, extractor.Input{
		Data: data,
		Rand: rand.New(rand.NewSource(42)),
	})
	require.NoError(t, err)
	return out
}

// normalCurve builds an evenly sampled Gaussian light curve with small
// uniform errors.
func normalCurve(n int, seed uint64) map[lightcurve.Kind][]float64 {
	rnd := rand.New(rand.NewSource(seed))
	mag := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}
	errDist := distuv.Uniform{Min: 0.001, Max: 0.01, Src: rnd}

	data := map[lightcurve.Kind][]float64{
		lightcurve.Time:      make([]float64, n),
		lightcurve.Magnitude: make([]float64, n),
		lightcurve.Error:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		data[lightcurve.Time][i] = float64(i)
		data[lightcurve.Magnitude][i] = mag.Rand()
		data[lightcurve.Error][i] = errDist.Rand()
	}
	return data
}

// alignedCurve duplicates a Gaussian band into the aligned vectors,
// with independent noise on the second band.
func alignedCurve(n int, seed uint64) map[lightcurve.Kind][]float64 {
	rnd := rand.New(rand.NewSource(seed))
	mag := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}

	data := map[lightcurve.Kind][]float64{
		lightcurve.AlignedTime:       make([]float64, n),
		lightcurve.AlignedMagnitude:  make([]float64, n),
		lightcurve.AlignedMagnitude2: make([]float64, n),
		lightcurve.AlignedError:      make([]float64, n),
		lightcurve.AlignedError2:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		data[lightcurve.AlignedTime][i] = float64(i)
		data[lightcurve.AlignedMagnitude][i] = mag.Rand()
		data[lightcurve.AlignedMagnitude2][i] = mag.Rand()
		data[lightcurve.AlignedError][i] = 1
		data[lightcurve.AlignedError2][i] = 1
	}
	return data
}

func TestGaussianExpectations(t *testing.T) {
	data := normalCurve(10000, 7)

	cases := []struct {
		feature string
		ext     extractor.Extractor
		want    float64
		tol     float64
	}{
		{"Mean", Mean{}, 0, 0.05},
		{"Std", Std{}, 1, 0.05},
		{"Skew", Skew{}, 0, 0.1},
		{"SmallKurtosis", SmallKurtosis{}, 0, 0.2},
		{"MedianAbsDev", MedianAbsDev{}, 0.674, 0.05},
		{"Beyond1Std", Beyond1Std{}, 0.317, 0.02},
		{"Eta_e", EtaE{}, 2, 0.3},
		{"Rcs", RCS{}, 0, 0.1},
		{"Con", &Con{Consecutive: 1}, 0.045, 0.01},
		{"FluxPercentileRatioMid20", FluxPercentileRatio{Mid: 20}, 0.154, 0.03},
		{"FluxPercentileRatioMid35", FluxPercentileRatio{Mid: 35}, 0.275, 0.03},
		{"FluxPercentileRatioMid50", FluxPercentileRatio{Mid: 50}, 0.410, 0.03},
		{"FluxPercentileRatioMid65", FluxPercentileRatio{Mid: 65}, 0.568, 0.03},
		{"FluxPercentileRatioMid80", FluxPercentileRatio{Mid: 80}, 0.779, 0.03},
	}
	for _, tc := range cases {
		t.Run(tc.feature, func(t *testing.T) {
			out := run(t, tc.ext, data)
			assert.InDelta(t, tc.want, out[tc.feature].Scalar(), tc.tol)
		})
	}
}

func TestUniformExpectations(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	uni := distuv.Uniform{Min: 0, Max: 1, Src: rnd}
	n := 10000
	data := map[lightcurve.Kind][]float64{
		lightcurve.Magnitude: make([]float64, n),
	}
	for i := range data[lightcurve.Magnitude] {
		data[lightcurve.Magnitude][i] = uni.Rand()
	}

	out := run(t, MeanVariance{}, data)
	assert.InDelta(t, 0.577, out["Meanvariance"].Scalar(), 0.05)

	out = run(t, Q31{}, data)
	assert.InDelta(t, 0.5, out["Q31"].Scalar(), 0.05)
}

func TestAmplitudeSequence(t *testing.T) {
	n := 1001
	data := map[lightcurve.Kind][]float64{
		lightcurve.Magnitude: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		data[lightcurve.Magnitude][i] = float64(i)
	}
	out := run(t, Amplitude{}, data)
	assert.InDelta(t, 475, out["Amplitude"].Scalar(), 1e-9)
}

func TestColor(t *testing.T) {
	data := map[lightcurve.Kind][]float64{
		lightcurve.Magnitude:  {10, 11, 12},
		lightcurve.Magnitude2: {9, 10, 11},
	}
	out := run(t, Color{}, data)
	assert.InDelta(t, 1, out["Color"].Scalar(), 1e-12)
}

func TestLinearTrend(t *testing.T) {
	n := 100
	data := map[lightcurve.Kind][]float64{
		lightcurve.Time:      make([]float64, n),
		lightcurve.Magnitude: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		data[lightcurve.Time][i] = float64(i)
		data[lightcurve.Magnitude][i] = 3*float64(i) + 2
	}
	out := run(t, LinearTrend{}, data)
	assert.InDelta(t, 3, out["LinearTrend"].Scalar(), 1e-9)
}

func TestMaxSlope(t *testing.T) {
	data := map[lightcurve.Kind][]float64{
		lightcurve.Time:      {0, 1, 2, 3},
		lightcurve.Magnitude: {0, 1, 5, 5.5},
	}
	out := run(t, MaxSlope{}, data)
	assert.InDelta(t, 4, out["MaxSlope"].Scalar(), 1e-12)
}

func TestGskewSymmetric(t *testing.T) {
	data := normalCurve(10000, 3)
	out := run(t, Gskew{}, data)
	assert.InDelta(t, 0, out["Gskew"].Scalar(), 0.15)
}

func TestPairSlopeTrend(t *testing.T) {
	n := 100
	data := map[lightcurve.Kind][]float64{
		lightcurve.Magnitude: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		data[lightcurve.Magnitude][i] = float64(i) // strictly increasing
	}
	out := run(t, PairSlopeTrend{}, data)
	// 30 points give 29 increasing first differences
	assert.InDelta(t, 29.0/30, out["PairSlopeTrend"].Scalar(), 1e-12)
}

func TestEmptyMagnitudeErrors(t *testing.T) {
	data := map[lightcurve.Kind][]float64{lightcurve.Magnitude: {}}
	for _, ext := range []extractor.Extractor{
		Q31{}, Gskew{}, MedianAbsDev{}, MedianBRP{}, PercentAmplitude{}, Amplitude{},
	} {
		_, err := extractor.ExtractAndValidate(ext, extractor.Input{Data: data})
		assert.ErrorIs(t, err, ErrShortSeries, "%T", ext)
	}

	aligned := map[lightcurve.Kind][]float64{
		lightcurve.AlignedMagnitude:  {},
		lightcurve.AlignedMagnitude2: {},
	}
	_, err := extractor.ExtractAndValidate(Q31Color{}, extractor.Input{Data: aligned})
	assert.ErrorIs(t, err, ErrShortSeries)
}

func TestAndersonDarlingBounded(t *testing.T) {
	out := run(t, AndersonDarling{}, normalCurve(1000, 5))
	v := out["AndersonDarling"].Scalar()
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestMedianBRPBounded(t *testing.T) {
	out := run(t, MedianBRP{}, normalCurve(1000, 5))
	v := out["MedianBRP"].Scalar()
	assert.Greater(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestStetsonIndices(t *testing.T) {
	data := alignedCurve(500, 9)

	// independent bands carry no synchronous signal
	out := run(t, StetsonJ{}, data)
	assert.InDelta(t, 0, out["StetsonJ"].Scalar(), 0.2)

	out = run(t, StetsonL{}, data)
	assert.InDelta(t, 0, out["StetsonL"].Scalar(), 0.25)

	// a shared signal drives J positive
	synced := alignedCurve(500, 9)
	copy(synced[lightcurve.AlignedMagnitude2], synced[lightcurve.AlignedMagnitude])
	out = run(t, StetsonJ{}, synced)
	assert.Greater(t, out["StetsonJ"].Scalar(), 0.5)
}

func TestStetsonKGaussian(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}
	n := 5000
	data := map[lightcurve.Kind][]float64{
		lightcurve.Magnitude: make([]float64, n),
		lightcurve.Error:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		data[lightcurve.Magnitude][i] = dist.Rand()
		data[lightcurve.Error][i] = 1
	}
	out := run(t, StetsonK{}, data)
	assert.InDelta(t, 0.798, out["StetsonK"].Scalar(), 0.02)
}

func TestQ31Color(t *testing.T) {
	data := alignedCurve(5000, 21)
	out := run(t, Q31Color{}, data)
	// difference of two unit Gaussians has sigma sqrt(2)
	assert.InDelta(t, 1.349*math.Sqrt2, out["Q31_color"].Scalar(), 0.1)
}

func TestEtaColor(t *testing.T) {
	data := alignedCurve(5000, 23)
	out := run(t, EtaColor{}, data)
	assert.InDelta(t, 2, out["Eta_color"].Scalar(), 0.3)
}

func TestAutocorLengthWhiteNoise(t *testing.T) {
	out := run(t, NewAutocorLength(), normalCurve(2000, 31))
	// white noise decorrelates after the first lag
	assert.InDelta(t, 1, out["Autocor_length"].Scalar(), 1.01)
}

func TestPercentDifferenceFluxPercentile(t *testing.T) {
	data := normalCurve(5000, 37)
	out := run(t, PercentDifferenceFluxPercentile{}, data)
	assert.False(t, math.IsNaN(out["PercentDifferenceFluxPercentile"].Scalar()))
}

func TestDeltamDeltatGrid(t *testing.T) {
	data := normalCurve(50, 41)
	e := NewDeltamDeltat()
	out := run(t, e, data)
	v := out["DeltamDeltat"]
	require.Len(t, v, 23*24)
	for _, c := range v {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 255.0)
	}

	named := e.Flatten("DeltamDeltat", v)
	require.Len(t, named, len(v))
	assert.Equal(t, "dt_0_dm_0", named[0].Name)
	assert.Equal(t, "dt_0_dm_1", named[1].Name)
}

func TestStructureFunctionsFinite(t *testing.T) {
	out := run(t, StructureFunctions{}, normalCurve(300, 43))
	for _, f := range []string{
		"StructureFunction_index_21",
		"StructureFunction_index_31",
		"StructureFunction_index_32",
	} {
		assert.False(t, math.IsNaN(out[f].Scalar()), f)
	}
}

func TestShortSeriesErrors(t *testing.T) {
	tiny := map[lightcurve.Kind][]float64{
		lightcurve.Time:      {1},
		lightcurve.Magnitude: {10},
		lightcurve.Error:     {0.1},
	}
	_, err := extractor.ExtractAndValidate(SmallKurtosis{}, extractor.Input{Data: tiny})
	assert.ErrorIs(t, err, ErrShortSeries)

	_, err = extractor.ExtractAndValidate(EtaE{}, extractor.Input{Data: tiny})
	assert.ErrorIs(t, err, ErrShortSeries)
}
