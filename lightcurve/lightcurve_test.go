package lightcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("magnitude")
	require.NoError(t, err)
	assert.Equal(t, Magnitude, k)

	_, err = ParseKind("brightness")
	assert.Error(t, err)
}

func TestValidateLengths(t *testing.T) {
	lc := New().
		Set(Time, []float64{1, 2, 3}).
		Set(Magnitude, []float64{10, 11, 12}).
		Set(Error, []float64{0.1, 0.1, 0.1})
	assert.NoError(t, lc.Validate())

	bad := New().
		Set(Time, []float64{1, 2, 3}).
		Set(Magnitude, []float64{10, 11})
	assert.Error(t, bad.Validate())
}

func TestAlign(t *testing.T) {
	t1 := []float64{1, 2, 3, 4}
	m1 := []float64{10, 11, 12, 13}
	e1 := []float64{0.1, 0.2, 0.3, 0.4}
	t2 := []float64{2, 3, 5}
	m2 := []float64{20, 21, 22}
	e2 := []float64{0.5, 0.6, 0.7}

	at, am, am2, ae, ae2 := Align(t1, t2, m1, m2, e1, e2)
	assert.Equal(t, []float64{2, 3}, at)
	assert.Equal(t, []float64{11, 12}, am)
	assert.Equal(t, []float64{20, 21}, am2)
	assert.Equal(t, []float64{0.2, 0.3}, ae)
	assert.Equal(t, []float64{0.5, 0.6}, ae2)
}

func TestAlignNilErrors(t *testing.T) {
	at, _, _, ae, ae2 := Align(
		[]float64{1, 2}, []float64{2, 4},
		[]float64{10, 11}, []float64{20, 21},
		nil, nil)
	require.Len(t, at, 1)
	assert.Equal(t, []float64{0}, ae)
	assert.Equal(t, []float64{0}, ae2)
}

func TestFromBands(t *testing.T) {
	lc, err := FromBands(
		[]float64{1, 2, 3}, []float64{10, 11, 12}, []float64{0.1, 0.1, 0.1},
		[]float64{2, 3, 4}, []float64{20, 21, 22}, []float64{0.2, 0.2, 0.2},
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, lc.Get(AlignedTime))
	assert.Equal(t, []float64{11, 12}, lc.Get(AlignedMagnitude))
	assert.Equal(t, []float64{20, 21}, lc.Get(AlignedMagnitude2))
	assert.True(t, lc.Has(Magnitude2))
}

func TestRemoveNoiseDropsBadErrors(t *testing.T) {
	time := []float64{1, 2, 3, 4, 5}
	mag := []float64{10, 10.1, 9.9, 10, 10.05}
	err := []float64{0.1, 0.1, 0.1, 0.1, 10} // last error is junk

	ct, cm, ce, rerr := RemoveNoise(time, mag, err, DefaultNoiseOptions())
	require.NoError(t, rerr)
	assert.Equal(t, []float64{1, 2, 3, 4}, ct)
	assert.Equal(t, []float64{10, 10.1, 9.9, 10}, cm)
	assert.Len(t, ce, 4)
}

func TestRemoveNoiseKeepsQuietCurve(t *testing.T) {
	time := []float64{1, 2, 3}
	mag := []float64{10, 10.1, 9.9}
	err := []float64{0.1, 0.1, 0.1}

	_, cm, _, rerr := RemoveNoise(time, mag, err, DefaultNoiseOptions())
	require.NoError(t, rerr)
	assert.Equal(t, mag, cm)
}

func TestRemoveNoiseLengthMismatch(t *testing.T) {
	_, _, _, err := RemoveNoise(
		[]float64{1, 2}, []float64{1}, []float64{1, 2},
		DefaultNoiseOptions())
	assert.Error(t, err)
}
