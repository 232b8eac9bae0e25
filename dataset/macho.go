package dataset

import (
	"archive/tar"
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadMACHO reads a two-band MACHO light curve from a .tar.bz2 archive
// holding {id}.R.mjd and {id}.B.mjd, each a whitespace separated table
// of MJD, magnitude and error.  The id is taken from the archive name.
func LoadMACHO(tarPath string) (*Data, error) {
	id := strings.TrimSuffix(filepath.Base(tarPath), ".tar.bz2")

	f, err := os.Open(tarPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bands, err := readBandArchive(bzip2.NewReader(f), map[string]string{
		id + ".R.mjd": "R",
		id + ".B.mjd": "B",
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", tarPath, err)
	}
	return &Data{
		ID:          id,
		Survey:      "MACHO",
		Description: "light curve from the MACHO survey",
		Bands:       bands,
	}, nil
}

// readBandArchive extracts the named members of a tar stream as bands.
// Member names are matched on their base name.
func readBandArchive(r io.Reader, members map[string]string) (map[string]Band, error) {
	bands := make(map[string]Band, len(members))
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		name, ok := members[filepath.Base(hdr.Name)]
		if !ok {
			continue
		}
		b, err := readBandTable(tr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", hdr.Name, err)
		}
		bands[name] = b
	}
	for _, name := range members {
		if _, ok := bands[name]; !ok {
			return nil, fmt.Errorf("band %s missing from archive", name)
		}
	}
	return bands, nil
}

// readBandTable parses a three-column time, magnitude, error table.
// Blank lines and lines starting with # are skipped.
func readBandTable(r io.Reader) (Band, error) {
	var b Band
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return Band{}, fmt.Errorf("short row %q", line)
		}
		var vals [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return Band{}, err
			}
			vals[i] = v
		}
		b.Time = append(b.Time, vals[0])
		b.Magnitude = append(b.Magnitude, vals[1])
		b.Error = append(b.Error, vals[2])
	}
	return b, sc.Err()
}
