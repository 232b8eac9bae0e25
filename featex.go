package featex

import (
	"fmt"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// FeatureSpace is an immutable extraction plan: the set of feature
// extractors to run, dependency sorted, for a declared combination of
// available light-curve vectors and wanted features.  Build one with
// New and reuse it across light curves; it is safe for concurrent use.
type FeatureSpace struct {
	opts     *spaceOptions
	plan     []extractor.Extractor
	byName   map[string]extractor.Extractor
	selected []string
	data     map[lightcurve.Kind]bool
}

// New builds a feature space from the declared data and the feature
// filters.  Filtering keeps every extractor whose required vectors are
// declared and whose features survive the only/exclude filters, then
// closes the set over dependencies so everything needed gets computed.
func New(opts ...Option) (*FeatureSpace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.workers < 1 {
		o.workers = 1
	}

	fs := &FeatureSpace{opts: o, data: make(map[lightcurve.Kind]bool)}
	if len(o.data) == 0 {
		for _, k := range lightcurve.Kinds {
			fs.data[k] = true
		}
	} else {
		for _, k := range o.data {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
			}
			fs.data[k] = true
		}
	}

	candidates := o.registry.Extractors()
	for _, f := range o.extra {
		candidates = append(candidates, f())
	}
	if err := fs.buildPlan(candidates); err != nil {
		return nil, err
	}

	o.logger.Debug("feature space ready",
		"extractors", len(fs.plan), "features", len(fs.selected))
	return fs, nil
}

// buildPlan selects and dependency-sorts the extractors to run.
func (fs *FeatureSpace) buildPlan(candidates []extractor.Extractor) error {
	producer := make(map[string]extractor.Extractor)
	computable := make(map[string]bool)
	for _, ext := range candidates {
		ok := fs.hasData(ext)
		for _, f := range ext.Info().Features {
			producer[f] = ext
			computable[f] = ok
		}
	}

	wanted := make(map[string]bool)
	if len(fs.opts.only) > 0 {
		for _, f := range fs.opts.only {
			if _, known := producer[f]; !known {
				return fmt.Errorf("%w: %q", ErrUnknownFeature, f)
			}
			if !computable[f] {
				return fmt.Errorf("%w: %q needs %v", ErrDataRequired,
					f, producer[f].Info().Required())
			}
			wanted[f] = true
		}
	} else {
		for f, ok := range computable {
			if ok {
				wanted[f] = true
			}
		}
	}
	for _, f := range fs.opts.exclude {
		if _, known := producer[f]; !known {
			return fmt.Errorf("%w: %q", ErrUnknownFeature, f)
		}
		delete(wanted, f)
	}
	if len(wanted) == 0 {
		return ErrEmptyPlan
	}

	// close the execution set over dependencies
	inPlan := make(map[extractor.Extractor]bool)
	var grow func(ext extractor.Extractor) error
	grow = func(ext extractor.Extractor) error {
		if inPlan[ext] {
			return nil
		}
		inPlan[ext] = true
		for _, dep := range ext.Info().Dependencies {
			dp, known := producer[dep]
			if !known || !computable[dep] {
				return fmt.Errorf("%w: %q needs feature %q",
					ErrDataRequired, ext.Info().Features[0], dep)
			}
			if err := grow(dp); err != nil {
				return err
			}
		}
		return nil
	}
	for _, ext := range candidates {
		for _, f := range ext.Info().Features {
			if wanted[f] {
				if err := grow(ext); err != nil {
					return err
				}
				break
			}
		}
	}

	execution := make([]extractor.Extractor, 0, len(inPlan))
	for _, ext := range candidates {
		if inPlan[ext] {
			execution = append(execution, ext)
		}
	}
	sorted, err := extractor.SortByDependencies(execution)
	if err != nil {
		return err
	}

	fs.plan = sorted
	fs.byName = make(map[string]extractor.Extractor)
	for _, ext := range sorted {
		for _, f := range ext.Info().Features {
			fs.byName[f] = ext
			if wanted[f] {
				fs.selected = append(fs.selected, f)
			}
		}
	}
	return nil
}

// hasData reports whether every required vector of ext is declared.
func (fs *FeatureSpace) hasData(ext extractor.Extractor) bool {
	for _, k := range ext.Info().Required() {
		if !fs.data[k] {
			return false
		}
	}
	return true
}

// Features returns the names this space reports, in execution order.
func (fs *FeatureSpace) Features() []string {
	return append([]string(nil), fs.selected...)
}
