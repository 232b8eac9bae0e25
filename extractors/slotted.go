package extractors

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// SlottedALength yields SlottedA_length: the first slotted
// autocorrelation lag below 1/e, in time units (Protopapas et al. 2012).
// Slotted autocorrelation averages cross products of samples whose time
// difference falls in discrete slots, making it usable on unevenly
// sampled series.
type SlottedALength struct {
	// Tau is the slot size; zero estimates it from the 5th percentile
	// of the time sampling intervals.
	Tau float64
}

// NewSlottedALength returns the extractor with the standard one day
// slot.
func NewSlottedALength() *SlottedALength { return &SlottedALength{Tau: 1} }

func (*SlottedALength) Info() extractor.Info {
	return extractor.Info{
		Data: []lightcurve.Kind{
			lightcurve.Magnitude, lightcurve.Time,
		},
		Features: []string{"SlottedA_length"},
	}
}

func (e *SlottedALength) Extract(in extractor.Input) (map[string]extractor.Value, error) {
	mag := in.Series(lightcurve.Magnitude)
	time := in.Series(lightcurve.Time)
	sc, err := slottedStart(mag, time, e.Tau)
	if err != nil {
		return nil, err
	}

	threshold := math.Exp(-1)
	k := firstBelow(sc.sac, threshold)
	kmax := sc.k
	span := floats.Max(time) - floats.Min(time)
	for k < 0 {
		kmax += kmax
		if float64(kmax) > span/sc.tau {
			break
		}
		sac, slots := slottedAutocorrelation(mag, time, sc.tau, kmax)
		sc.sac, sc.slots = sac, slots
		k = firstBelow(sc.sac, threshold)
	}

	val := math.NaN()
	if k >= 0 {
		val = float64(sc.slots[k]) * sc.tau
	}
	return map[string]extractor.Value{
		"SlottedA_length": extractor.Scalar(val),
	}, nil
}

func firstBelow(xs []float64, threshold float64) int {
	for i, v := range xs {
		if v < threshold {
			return i
		}
	}
	return -1
}

// slottedConditions carries the initial slotted autocorrelation state
// shared by SlottedA_length and StetsonK_AC.
type slottedConditions struct {
	tau   float64
	k     int
	slots []int
	sac   []float64
}

func slottedStart(mag, time []float64, tau float64) (*slottedConditions, error) {
	n := len(time)
	if n < 2 {
		return nil, ErrShortSeries
	}
	if tau == 0 {
		deltas := diff(time)
		sort.Float64s(deltas)
		i := int(float64(n)*0.05) + 1
		if i >= len(deltas) {
			i = len(deltas) - 1
		}
		tau = deltas[i]
		if tau <= 0 {
			// duplicate timestamps leave no usable slot width
			return nil, ErrShortSeries
		}
	}
	const k = 100
	sac, slots := slottedAutocorrelation(mag, time, tau, k)
	return &slottedConditions{tau: tau, k: k, slots: slots, sac: sac}, nil
}

// slottedAutocorrelation averages cross products of mean-subtracted
// magnitude pairs by time-difference slot, normalized by the zero-lag
// slot.  It returns the normalized values for the populated slots and
// the slot numbers, in increasing order.
func slottedAutocorrelation(mag, time []float64, tau float64, kmax int) (sac []float64, slots []int) {
	n := len(mag)
	mean := stat.Mean(mag, nil)
	data := make([]float64, n)
	for i, m := range mag {
		data[i] = m - mean
	}

	sums := make([]float64, kmax)
	counts := make([]int, kmax)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dt := math.Abs(time[j] - time[i])
			k := int(math.Floor(dt/tau + 0.5))
			if k >= kmax {
				continue
			}
			sums[k] += data[i] * data[j]
			counts[k]++
		}
	}

	// zero lag includes every sample with itself
	var sq float64
	for _, d := range data {
		sq += d * d
	}
	prod0 := (sq + sums[0]) / float64(counts[0]+n)

	sac = append(sac, 1) // prod0/prod0
	slots = append(slots, 0)
	for k := 1; k < kmax; k++ {
		if counts[k] == 0 {
			continue
		}
		sac = append(sac, sums[k]/float64(counts[k])/prod0)
		slots = append(slots, k)
	}
	return sac, slots
}
