package extractor

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registration and contract errors.
var (
	// ErrBadDefined is returned when an extractor declaration is
	// inconsistent (empty data, duplicate features, unknown kinds...).
	ErrBadDefined = errors.New("extractor badly defined")

	// ErrContract is returned when an extractor produces a feature set
	// different from the one it declared.
	ErrContract = errors.New("extractor contract violation")

	// ErrUnresolved is returned when dependency sorting cannot satisfy
	// an extractor's dependencies.
	ErrUnresolved = errors.New("unresolvable extractor dependencies")
)

// Factory builds a fresh extractor with default parameters.
type Factory func() Extractor

// Registry maps feature names to the factories of the extractors that
// compute them.  The zero value is not usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	byFeature map[string]Factory
	factories []Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byFeature: make(map[string]Factory)}
}

// Register validates the factory's extractor declaration and adds it.
// Validation mirrors the registration contract of the extractor base:
// non-empty data of known kinds without duplicates, non-empty feature
// list without duplicates or collisions, feature names distinct from
// data kind names, and every dependency already registered (which also
// rules out dependency cycles).
func (r *Registry) Register(f Factory) error {
	nfo := f().Info()

	if len(nfo.Data) == 0 {
		return fmt.Errorf("%w: 'data' can't be empty", ErrBadDefined)
	}
	seenKind := make(map[string]bool)
	for _, k := range nfo.Data {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown data kind %q", ErrBadDefined, k)
		}
		if seenKind[string(k)] {
			return fmt.Errorf("%w: duplicated data kind %q", ErrBadDefined, k)
		}
		seenKind[string(k)] = true
	}
	for _, k := range nfo.Optional {
		if !seenKind[string(k)] {
			return fmt.Errorf(
				"%w: optional kind %q not in data", ErrBadDefined, k)
		}
	}

	if len(nfo.Features) == 0 {
		return fmt.Errorf("%w: 'features' can't be empty", ErrBadDefined)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seenFeat := make(map[string]bool)
	for _, feat := range nfo.Features {
		if seenKind[feat] {
			return fmt.Errorf(
				"%w: feature %q collides with a data kind name",
				ErrBadDefined, feat)
		}
		if seenFeat[feat] {
			return fmt.Errorf(
				"%w: duplicated feature %q", ErrBadDefined, feat)
		}
		if _, taken := r.byFeature[feat]; taken {
			return fmt.Errorf(
				"%w: feature %q already registered", ErrBadDefined, feat)
		}
		seenFeat[feat] = true
	}
	for _, dep := range nfo.Dependencies {
		if _, ok := r.byFeature[dep]; !ok {
			return fmt.Errorf(
				"%w: dependency %q is not registered", ErrBadDefined, dep)
		}
	}

	for _, feat := range nfo.Features {
		r.byFeature[feat] = f
	}
	r.factories = append(r.factories, f)
	return nil
}

// MustRegister is Register that panics on error.  Built-in extractors
// register themselves with it from init functions.
func (r *Registry) MustRegister(f Factory) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Lookup returns a fresh extractor computing the named feature.
func (r *Registry) Lookup(feature string) (Extractor, bool) {
	r.mu.RLock()
	f, ok := r.byFeature[feature]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// IsRegistered reports whether a feature name is known.
func (r *Registry) IsRegistered(feature string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byFeature[feature]
	return ok
}

// Available returns the sorted list of registered feature names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	feats := make([]string, 0, len(r.byFeature))
	for f := range r.byFeature {
		feats = append(feats, f)
	}
	sort.Strings(feats)
	return feats
}

// Extractors instantiates every registered extractor, in registration
// order.
func (r *Registry) Extractors() []Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]Extractor, len(r.factories))
	for i, f := range r.factories {
		exts[i] = f()
	}
	return exts
}

// SortByDependencies computes the feature extractor resolution order:
// a permutation of exts where every extractor appears after the
// extractors producing its dependency features.  Extractors whose
// dependencies cannot be satisfied from within exts cause ErrUnresolved.
func SortByDependencies(exts []Extractor) ([]Extractor, error) {
	type pending struct {
		ext   Extractor
		tries int
	}
	queue := make([]pending, len(exts))
	for i, e := range exts {
		queue[i] = pending{ext: e}
	}
	retry := len(exts) * 100

	var sorted []Extractor
	resolved := make(map[string]bool)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		ok := true
		for _, dep := range p.ext.Info().Dependencies {
			if !resolved[dep] {
				ok = false
				break
			}
		}
		if !ok {
			if p.tries+1 > retry {
				return nil, fmt.Errorf("%w: gave up after %d passes at %T",
					ErrUnresolved, retry, p.ext)
			}
			queue = append(queue, pending{ext: p.ext, tries: p.tries + 1})
			continue
		}
		sorted = append(sorted, p.ext)
		for _, f := range p.ext.Info().Features {
			resolved[f] = true
		}
	}
	return sorted, nil
}

// Default is the registry the built-in catalogue registers into and the
// one FeatureSpace consults.  Register on it to plug in additional
// feature extractors.
var Default = NewRegistry()

// Register adds a factory to the default registry.
func Register(f Factory) error { return Default.Register(f) }

// MustRegister adds a factory to the default registry, panicking on
// invalid declarations.
func MustRegister(f Factory) { Default.MustRegister(f) }
