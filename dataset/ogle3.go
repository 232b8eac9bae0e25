package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// ogle3URL serves one source as a tar of per-band .dat tables.
const ogle3URL = "http://ogledb.astrouw.edu.pl/~ogle/CVS/sendobj.php?starcat=%s"

// OGLE3 fetches light curves from the OGLE-III On-line Catalog of
// Variable Stars, caching downloads under CacheDir.
type OGLE3 struct {
	// CacheDir holds downloaded archives; empty means
	// os.UserCacheDir()/featex/ogle3.
	CacheDir string
	// Client overrides http.DefaultClient.
	Client *http.Client
	// Offline disables downloading; only cached sources resolve.
	Offline bool
}

// Fetch retrieves the I and V band photometry of one source, e.g.
// "OGLE-BLG-LPV-232377".  Archives already in the cache are not
// downloaded again.
func (o *OGLE3) Fetch(ctx context.Context, id string) (*Data, error) {
	dir := o.CacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "featex", "ogle3")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, id+".tar")
	if _, err := os.Stat(path); err != nil {
		if o.Offline {
			return nil, fmt.Errorf("dataset: %s not cached and downloads disabled", id)
		}
		if err := o.download(ctx, id, path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bands, err := readBandArchive(f, map[string]string{
		id + ".I.dat": "I",
		id + ".V.dat": "V",
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", id, err)
	}
	return &Data{
		ID:          id,
		Survey:      "OGLE-III",
		Description: "light curve from the OGLE-III catalog of variable stars",
		Bands:       bands,
	}, nil
}

// download writes the archive for id to path, via a temp file so an
// aborted transfer never poisons the cache.
func (o *OGLE3) download(ctx context.Context, id, path string) error {
	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf(ogle3URL, id), nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dataset: fetching %s: %s", id, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ogle3-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
