package featex

import (
	"runtime"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Option configures a FeatureSpace.
type Option func(*spaceOptions)

// spaceOptions holds optional FeatureSpace configuration.
type spaceOptions struct {
	registry *extractor.Registry
	data     []lightcurve.Kind
	only     []string
	exclude  []string
	extra    []extractor.Factory
	workers  int
	logger   Logger
	seed     uint64
}

func defaultOptions() *spaceOptions {
	return &spaceOptions{
		registry: extractor.Default,
		workers:  runtime.GOMAXPROCS(0),
		logger:   nopLogger{},
	}
}

// WithData declares the light-curve vectors extractions will provide.
// Extractors needing anything else are left out of the plan.  When no
// data is declared the space assumes all vectors are available.
func WithData(kinds ...lightcurve.Kind) Option {
	return func(o *spaceOptions) {
		o.data = append(o.data, kinds...)
	}
}

// WithOnly restricts the plan to the named features and whatever they
// depend on.  Dependencies are computed but not reported unless named.
func WithOnly(features ...string) Option {
	return func(o *spaceOptions) {
		o.only = append(o.only, features...)
	}
}

// WithExclude removes the named features from the plan.
func WithExclude(features ...string) Option {
	return func(o *spaceOptions) {
		o.exclude = append(o.exclude, features...)
	}
}

// WithExtractor registers an additional extractor factory for this
// space only, on top of the shared registry.
func WithExtractor(f extractor.Factory) Option {
	return func(o *spaceOptions) {
		o.extra = append(o.extra, f)
	}
}

// WithRegistry selects a registry other than the shared default.
func WithRegistry(r *extractor.Registry) Option {
	return func(o *spaceOptions) {
		o.registry = r
	}
}

// WithWorkers caps how many extractors run concurrently during Extract.
// Values below one select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *spaceOptions) {
		o.workers = n
	}
}

// WithLogger sets a logger.
func WithLogger(l Logger) Option {
	return func(o *spaceOptions) {
		o.logger = l
	}
}

// WithRandSeed fixes the seed of the random sources handed to sampling
// extractors, making runs repeatable.  Zero seeds from entropy.
func WithRandSeed(seed uint64) Option {
	return func(o *spaceOptions) {
		o.seed = seed
	}
}
