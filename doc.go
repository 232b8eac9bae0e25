/*
Package featex extracts time-series features from astronomical light
curves.

A light curve is a set of observation vectors: times, magnitudes and
photometric errors, optionally for two bands of the same object.
Features are scalar or vector statistics computed from those vectors,
used to characterize and classify variable sources: moments and robust
dispersion measures, variability indices, periodogram based periods and
the quantities derived from folding at them.

Feature extractors live in a registry keyed by feature name.  The
extractors package registers the built-in catalogue, which follows the
feature definitions of the FATS survey (Nun et al. 2015); additional
extractors plug in through extractor.Register or the WithExtractor
option.

A FeatureSpace is an immutable extraction plan.  It is built once from
the declared input vectors and the wanted features, resolves the
dependencies between extractors, and is then applied to any number of
light curves:

	fs, err := featex.New(
		featex.WithData(lightcurve.Time, lightcurve.Magnitude, lightcurve.Error),
		featex.WithOnly("Mean", "Std", "PeriodLS"),
	)
	if err != nil {
		// ...
	}
	set, err := fs.Extract(ctx, lc)

Within one extraction, extractors with no dependencies between them run
concurrently.  Runs are repeatable when a random seed is fixed with
WithRandSeed; sampling extractors draw from per-extractor sources
derived from it.

The dataset package loads MACHO and OGLE-III light curves and
synthesizes random ones.  The featex command wraps all of this for
batch extraction from files.
*/
package featex
