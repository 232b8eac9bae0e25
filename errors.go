package featex

import "errors"

// Sentinel errors returned by the FeatureSpace.
var (
	// ErrUnknownFeature is returned when a requested or excluded feature
	// is not in the registry.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrUnknownKind is returned when WithData names a vector kind that
	// does not exist.
	ErrUnknownKind = errors.New("unknown light-curve vector kind")

	// ErrDataRequired is returned when a requested feature needs a
	// light-curve vector the space does not declare.
	ErrDataRequired = errors.New("feature needs undeclared data")

	// ErrEmptyPlan is returned when filtering leaves nothing to compute.
	ErrEmptyPlan = errors.New("no features left to extract")

	// ErrMissingVector is returned by Extract when the light curve lacks
	// a vector the space declared.
	ErrMissingVector = errors.New("light curve missing declared vector")
)
