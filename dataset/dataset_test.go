package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestCreateNormal(t *testing.T) {
	d := CreateNormal(0, 1, 0, 0.001, 5000, 42)
	assert.Equal(t, []string{"B", "V"}, d.BandNames())

	b := d.Bands["B"]
	require.Len(t, b.Time, 5000)
	require.Len(t, b.Magnitude, 5000)
	require.Len(t, b.Error, 5000)

	assert.Equal(t, 0.0, b.Time[0])
	assert.Equal(t, 1.0, b.Time[len(b.Time)-1])
	assert.InDelta(t, 0, stat.Mean(b.Magnitude, nil), 0.05)
	assert.InDelta(t, 1, stat.StdDev(b.Magnitude, nil), 0.05)
}

func TestCreateUniform(t *testing.T) {
	d := CreateUniform(1, 2, 0, 0.001, 5000, 42)
	b := d.Bands["V"]
	for _, m := range b.Magnitude {
		assert.GreaterOrEqual(t, m, 1.0)
		assert.Less(t, m, 2.0)
	}
}

func TestCreatePeriodic(t *testing.T) {
	d := CreatePeriodic(0, 0.01, 2000, 42)
	b := d.Bands["B"]
	for _, tv := range b.Time {
		assert.GreaterOrEqual(t, tv, 0.0)
		assert.Less(t, tv, 100.0)
	}
	// a sinusoid with small noise stays near [-1, 1]
	for _, m := range b.Magnitude {
		assert.Less(t, math.Abs(m), 1.5)
	}
}

func TestLightCurveFromBands(t *testing.T) {
	d := CreateNormal(0, 1, 0, 0.001, 100, 7)
	lc, err := d.LightCurve("B", "V")
	require.NoError(t, err)
	require.NoError(t, lc.Validate())

	_, err = d.LightCurve("B", "K")
	assert.Error(t, err)
}

func TestReadBandTable(t *testing.T) {
	const table = `# mjd mag err
	49031.0 14.1 0.05

	49032.0 14.2 0.04
	`
	b, err := readBandTable(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, []float64{49031, 49032}, b.Time)
	assert.Equal(t, []float64{14.1, 14.2}, b.Magnitude)
	assert.Equal(t, []float64{0.05, 0.04}, b.Error)
}

func TestReadBandTableShortRow(t *testing.T) {
	_, err := readBandTable(strings.NewReader("49031.0 14.1\n"))
	assert.Error(t, err)
}
