package lightcurve

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// NoiseOptions control RemoveNoise.  The zero value is not useful; use
// DefaultNoiseOptions for the standard thresholds.
type NoiseOptions struct {
	// ErrorLimit is the multiple of the mean photometric error above
	// which a point is considered noise.
	ErrorLimit float64
	// StdLimit is the number of standard deviations from the mean
	// magnitude beyond which a point is considered noise.
	StdLimit float64
}

// DefaultNoiseOptions returns the standard clipping thresholds.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{ErrorLimit: 3, StdLimit: 5}
}

// RemoveNoise drops points whose error exceeds ErrorLimit times the mean
// error or whose magnitude deviates more than StdLimit standard
// deviations from the mean magnitude.  The input slices are not modified.
func RemoveNoise(time, mag, err []float64, opts NoiseOptions) (t, m, e []float64, _ error) {
	if len(time) != len(mag) || len(mag) != len(err) {
		return nil, nil, nil, fmt.Errorf(
			"lightcurve: RemoveNoise needs equal length vectors, got %d/%d/%d",
			len(time), len(mag), len(err))
	}
	if len(time) == 0 {
		return nil, nil, nil, nil
	}

	errMean := stat.Mean(err, nil)
	if errMean == 0 {
		errMean = 1
	}
	errTol := opts.ErrorLimit * errMean
	magMean := stat.Mean(mag, nil)
	magStd := stat.PopStdDev(mag, nil)

	for i := range time {
		dev := mag[i] - magMean
		if dev < 0 {
			dev = -dev
		}
		if err[i] < errTol && dev/magStd < opts.StdLimit {
			t = append(t, time[i])
			m = append(m, mag[i])
			e = append(e, err[i])
		}
	}
	return t, m, e, nil
}

// Align synchronizes two bands of the same object by inner-joining them
// on exactly matching observation times.  The returned vectors preserve
// the time order of the first band.  A nil error vector is treated as
// all zeros.
func Align(time, time2, mag, mag2, err, err2 []float64) (at, am, am2, ae, ae2 []float64) {
	if err == nil {
		err = make([]float64, len(time))
	}
	if err2 == nil {
		err2 = make([]float64, len(time2))
	}

	// index the second band; first occurrence wins on duplicate times
	idx2 := make(map[float64]int, len(time2))
	for i, t := range time2 {
		if _, ok := idx2[t]; !ok {
			idx2[t] = i
		}
	}

	for i, t := range time {
		j, ok := idx2[t]
		if !ok {
			continue
		}
		at = append(at, t)
		am = append(am, mag[i])
		am2 = append(am2, mag2[j])
		ae = append(ae, err[i])
		ae2 = append(ae2, err2[j])
	}
	return at, am, am2, ae, ae2
}
