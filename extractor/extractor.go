// Package extractor defines the feature extractor contract and the
// registry that maps feature names to the extractors that compute them.
//
// An extractor declares the light-curve vectors it needs, the features it
// yields and, optionally, features computed by other extractors that it
// depends on.  The registry validates those declarations at registration
// time and can order a set of extractors so every dependency is computed
// before its dependents.
package extractor

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/astrolab/featex/lightcurve"
)

// Value is the result of a single feature.  Most features are scalar and
// have length 1; periodicity features carry one value per trial period,
// and grid features (signatures, dm-dt maps) carry one value per bin.
type Value []float64

// Scalar wraps a single float64 as a Value.
func Scalar(x float64) Value { return Value{x} }

// Scalar returns the first element, or NaN for an empty value.
func (v Value) Scalar() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	return v[0]
}

// Info describes an extractor: what it needs and what it yields.
type Info struct {
	// Data lists the light-curve vectors the extractor reads.
	Data []lightcurve.Kind
	// Optional marks the subset of Data that may be absent; the
	// extractor must cope with a nil slice for those kinds.
	Optional []lightcurve.Kind
	// Dependencies names features computed by other extractors that
	// must be available before Extract runs.
	Dependencies []string
	// Features names the values Extract returns.  The returned map
	// must contain exactly these keys.
	Features []string
}

// Required returns Data minus Optional.
func (nfo Info) Required() []lightcurve.Kind {
	opt := make(map[lightcurve.Kind]bool, len(nfo.Optional))
	for _, k := range nfo.Optional {
		opt[k] = true
	}
	var req []lightcurve.Kind
	for _, k := range nfo.Data {
		if !opt[k] {
			req = append(req, k)
		}
	}
	return req
}

// Input carries everything an extractor may read during Extract.
type Input struct {
	// Data holds the light-curve vectors.  Keys are the kinds the
	// extractor declared; optional kinds may be missing.
	Data map[lightcurve.Kind][]float64
	// Features holds the resolved dependency values.
	Features map[string]Value
	// Rand is a per-extraction random source for extractors that
	// sample (bootstrap false-alarm estimates and the like).  It is
	// never nil during a FeatureSpace run.
	Rand *rand.Rand
}

// Series returns the vector for k, or nil if absent.
func (in Input) Series(k lightcurve.Kind) []float64 { return in.Data[k] }

// Dep returns the value of a declared dependency feature.
func (in Input) Dep(name string) Value { return in.Features[name] }

// Extractor computes one or more features from a light curve.
// Implementations must be safe for concurrent use by multiple
// goroutines; Extract receives all mutable state through Input.
type Extractor interface {
	Info() Info
	Extract(in Input) (map[string]Value, error)
}

// Named is a single flattened feature value.
type Named struct {
	Name  string
	Value float64
}

// Flattener is implemented by extractors whose values expand to scalars
// under names other than the default Name_i scheme.
type Flattener interface {
	Flatten(feature string, v Value) []Named
}

// Flatten expands a feature value to named scalars.  Scalars keep their
// feature name; vectors get a _i suffix per element.
func Flatten(feature string, v Value) []Named {
	if len(v) == 1 {
		return []Named{{Name: feature, Value: v[0]}}
	}
	out := make([]Named, len(v))
	for i, x := range v {
		out[i] = Named{Name: fmt.Sprintf("%s_%d", feature, i), Value: x}
	}
	return out
}

// FlattenWith applies the extractor's own Flattener when it has one,
// falling back to the default scheme.
func FlattenWith(ext Extractor, feature string, v Value) []Named {
	if f, ok := ext.(Flattener); ok {
		return f.Flatten(feature, v)
	}
	return Flatten(feature, v)
}

// ExtractAndValidate runs the extractor and checks the result against its
// declared features: the returned keys must match exactly.
func ExtractAndValidate(ext Extractor, in Input) (map[string]Value, error) {
	res, err := ext.Extract(in)
	if err != nil {
		return nil, err
	}
	nfo := ext.Info()
	if len(res) != len(nfo.Features) {
		return nil, contractError(ext, res)
	}
	for _, f := range nfo.Features {
		if _, ok := res[f]; !ok {
			return nil, contractError(ext, res)
		}
	}
	return res, nil
}

func contractError(ext Extractor, res map[string]Value) error {
	got := make([]string, 0, len(res))
	for f := range res {
		got = append(got, f)
	}
	return fmt.Errorf("%w: %T declared %v but produced %v",
		ErrContract, ext, ext.Info().Features, got)
}
