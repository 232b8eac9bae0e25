// Package lightcurve defines the input vectors of an astronomical light
// curve and the preprocessing helpers that clean and align them.
//
// A light curve is a set of named float64 vectors: observation times,
// magnitudes and photometric errors for a primary band, magnitudes for an
// optional second band, and the five "aligned" vectors produced by joining
// two bands on common observation times.
package lightcurve

import (
	"fmt"
)

// Kind names one of the input vectors a feature extractor can require.
// The string values are part of the public contract; config files and
// serialized plans refer to them.
type Kind string

const (
	Time              Kind = "time"
	Magnitude         Kind = "magnitude"
	Error             Kind = "error"
	Magnitude2        Kind = "magnitude2"
	AlignedTime       Kind = "aligned_time"
	AlignedMagnitude  Kind = "aligned_magnitude"
	AlignedMagnitude2 Kind = "aligned_magnitude2"
	AlignedError      Kind = "aligned_error"
	AlignedError2     Kind = "aligned_error2"
)

// Kinds lists every valid vector kind in canonical order.
var Kinds = []Kind{
	Time,
	Magnitude,
	Error,
	Magnitude2,
	AlignedTime,
	AlignedMagnitude,
	AlignedMagnitude2,
	AlignedError,
	AlignedError2,
}

// Valid reports whether k is one of the defined vector kinds.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if k == v {
			return true
		}
	}
	return false
}

// ParseKind converts a string to a Kind, or errors for unknown names.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("lightcurve: unknown data kind %q", s)
	}
	return k, nil
}

// LightCurve holds the available vectors of a single light curve.
// Vectors not observed are simply absent.
type LightCurve struct {
	vectors map[Kind][]float64
}

// New returns an empty light curve.
func New() *LightCurve {
	return &LightCurve{vectors: make(map[Kind][]float64)}
}

// Set stores a vector, replacing any previous value for the kind.
// It returns the light curve for chaining.
func (lc *LightCurve) Set(k Kind, v []float64) *LightCurve {
	lc.vectors[k] = v
	return lc
}

// Get returns the vector for k, or nil if absent.
func (lc *LightCurve) Get(k Kind) []float64 {
	return lc.vectors[k]
}

// Has reports whether a vector is present for k.
func (lc *LightCurve) Has(k Kind) bool {
	return lc.vectors[k] != nil
}

// Available returns the kinds present, in canonical order.
func (lc *LightCurve) Available() []Kind {
	var ks []Kind
	for _, k := range Kinds {
		if lc.Has(k) {
			ks = append(ks, k)
		}
	}
	return ks
}

// Vectors returns a shallow copy of the kind to vector map.
func (lc *LightCurve) Vectors() map[Kind][]float64 {
	m := make(map[Kind][]float64, len(lc.vectors))
	for k, v := range lc.vectors {
		m[k] = v
	}
	return m
}

// Validate checks length consistency: the primary band vectors must agree
// with each other, and the aligned vectors must all have a common length.
func (lc *LightCurve) Validate() error {
	if err := lc.sameLen(Time, Magnitude, Error); err != nil {
		return err
	}
	return lc.sameLen(AlignedTime, AlignedMagnitude, AlignedMagnitude2,
		AlignedError, AlignedError2)
}

func (lc *LightCurve) sameLen(kinds ...Kind) error {
	ref, refKind := -1, Kind("")
	for _, k := range kinds {
		v, ok := lc.vectors[k]
		if !ok {
			continue
		}
		if ref < 0 {
			ref, refKind = len(v), k
			continue
		}
		if len(v) != ref {
			return fmt.Errorf(
				"lightcurve: %s has %d points but %s has %d",
				k, len(v), refKind, ref)
		}
	}
	return nil
}

// FromBands builds a light curve from one or two observed bands.
// When the second band is present its time/magnitude/error vectors are
// stored as magnitude2 and the aligned vectors are derived with Align.
func FromBands(time, mag, err []float64, time2, mag2, err2 []float64) (*LightCurve, error) {
	lc := New().Set(Time, time).Set(Magnitude, mag)
	if err != nil {
		lc.Set(Error, err)
	}
	if time2 != nil {
		lc.Set(Magnitude2, mag2)
		at, am, am2, ae, ae2 := Align(time, time2, mag, mag2, err, err2)
		lc.Set(AlignedTime, at).
			Set(AlignedMagnitude, am).
			Set(AlignedMagnitude2, am2).
			Set(AlignedError, ae).
			Set(AlignedError2, ae2)
	}
	if verr := lc.Validate(); verr != nil {
		return nil, verr
	}
	return lc, nil
}
