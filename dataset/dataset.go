// Package dataset loads and synthesizes light curves for feature
// extraction: MACHO example curves, the OGLE-III on-line catalog of
// variable stars, and random series for testing.
package dataset

import (
	"fmt"
	"sort"

	"github.com/astrolab/featex/lightcurve"
)

// Band is one photometric band of a source.
type Band struct {
	Time      []float64
	Magnitude []float64
	Error     []float64
}

// Data is a source with one or more observed bands.
type Data struct {
	ID          string
	Survey      string
	Description string
	Bands       map[string]Band
}

// BandNames returns the available band names, sorted.
func (d *Data) BandNames() []string {
	names := make([]string, 0, len(d.Bands))
	for n := range d.Bands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LightCurve builds the extraction input from one band, with the second
// band aligned against it for the color features.
func (d *Data) LightCurve(band, band2 string) (*lightcurve.LightCurve, error) {
	b, ok := d.Bands[band]
	if !ok {
		return nil, fmt.Errorf("dataset: %s has no band %q", d.ID, band)
	}
	b2, ok := d.Bands[band2]
	if !ok {
		return nil, fmt.Errorf("dataset: %s has no band %q", d.ID, band2)
	}
	return lightcurve.FromBands(
		b.Time, b.Magnitude, b.Error,
		b2.Time, b2.Magnitude, b2.Error,
	)
}
