package featex

import (
	"github.com/astrolab/featex/extractor"
)

// FeatureSet holds the values of one extraction, keyed by feature name.
type FeatureSet struct {
	names  []string
	values map[string]extractor.Value
	byName map[string]extractor.Extractor
}

// Names returns the feature names, in plan order.
func (s *FeatureSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Value returns the value of a feature, or nil if the set lacks it.
func (s *FeatureSet) Value(name string) extractor.Value {
	return s.values[name]
}

// Scalar returns the scalar value of a feature, NaN if absent.
func (s *FeatureSet) Scalar(name string) float64 {
	return s.values[name].Scalar()
}

// Flatten expands every feature to named scalars, honoring extractor
// specific naming for grid and harmonic features.  Order follows Names.
func (s *FeatureSet) Flatten() []extractor.Named {
	var out []extractor.Named
	for _, name := range s.names {
		v := s.values[name]
		ext := s.byName[name]
		out = append(out, extractor.FlattenWith(ext, name, v)...)
	}
	return out
}
