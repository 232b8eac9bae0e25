package featex

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/astrolab/featex/extractor"
	"github.com/astrolab/featex/lightcurve"
)

// Extract runs the plan against one light curve.  Extractors with no
// unresolved dependencies between them run concurrently, up to the
// worker cap; dependents wait for the wave producing their inputs.
func (fs *FeatureSpace) Extract(ctx context.Context, lc *lightcurve.LightCurve) (*FeatureSet, error) {
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	for _, ext := range fs.plan {
		for _, k := range ext.Info().Required() {
			if !lc.Has(k) || len(lc.Get(k)) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrMissingVector, k)
			}
		}
	}

	seed := fs.opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	results := make(map[string]extractor.Value)
	var mu sync.Mutex

	for _, wave := range fs.waves() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(fs.opts.workers)
		for i, ext := range wave {
			ext := ext
			rnd := rand.New(rand.NewSource(seed + uint64(i)))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				out, err := extractor.ExtractAndValidate(ext, extractor.Input{
					Data:     fs.inputData(ext, lc),
					Features: fs.depValues(ext, results, &mu),
					Rand:     rnd,
				})
				if err != nil {
					fs.opts.logger.Error("extractor failed",
						"extractor", ext.Info().Features[0], "error", err)
					return err
				}
				fs.opts.logger.Debug("extractor done",
					"extractor", ext.Info().Features[0],
					"elapsed", time.Since(start))
				mu.Lock()
				for f, v := range out {
					results[f] = v
				}
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	values := make(map[string]extractor.Value, len(fs.selected))
	for _, f := range fs.selected {
		values[f] = results[f]
	}
	return &FeatureSet{names: fs.selected, values: values, byName: fs.byName}, nil
}

// waves yields the plan grouped into dependency levels: every extractor
// in a wave depends only on features produced by earlier waves.
func (fs *FeatureSpace) waves() [][]extractor.Extractor {
	level := make(map[string]int) // feature -> wave it is available after
	var out [][]extractor.Extractor
	for _, ext := range fs.plan {
		w := 0
		for _, dep := range ext.Info().Dependencies {
			if l := level[dep] + 1; l > w {
				w = l
			}
		}
		for len(out) <= w {
			out = append(out, nil)
		}
		out[w] = append(out[w], ext)
		for _, f := range ext.Info().Features {
			level[f] = w
		}
	}
	return out
}

// inputData copies the declared vectors out of the light curve.
func (fs *FeatureSpace) inputData(ext extractor.Extractor, lc *lightcurve.LightCurve) map[lightcurve.Kind][]float64 {
	data := make(map[lightcurve.Kind][]float64)
	for _, k := range ext.Info().Data {
		if lc.Has(k) {
			data[k] = lc.Get(k)
		}
	}
	return data
}

// depValues snapshots the dependency features for one extractor.
func (fs *FeatureSpace) depValues(ext extractor.Extractor, results map[string]extractor.Value, mu *sync.Mutex) map[string]extractor.Value {
	deps := ext.Info().Dependencies
	if len(deps) == 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]extractor.Value, len(deps))
	for _, d := range deps {
		out[d] = results[d]
	}
	return out
}
