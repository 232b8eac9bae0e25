// Package extractors implements the built-in feature catalogue:
// statistical moments, variability indices, percentile ratios, Stetson
// indices, autocorrelation measures, periodicity features derived from
// the Lomb-Scargle periodogram, and two-band color features.
//
// Importing the package registers every built-in extractor in the
// default registry.  Feature names and formulas follow the FATS/feets
// catalogue so results are comparable with values published for it.
package extractors
