package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrolab/featex"
	"github.com/astrolab/featex/dataset"
	"github.com/astrolab/featex/extractor"
	_ "github.com/astrolab/featex/extractors" // register the catalogue
	"github.com/astrolab/featex/lightcurve"
)

var (
	flagOnly    []string
	flagExclude []string
	flagWorkers int
	flagSeed    uint64
	flagFormat  string
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract features from light-curve files",
	Long: `Extract runs the feature plan over each input file and prints one
result row per curve, in input order.  Files are processed
concurrently; "-" reads a single table from standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringSliceVar(&flagOnly, "only", nil,
		"features to compute (default all computable)")
	extractCmd.Flags().StringSliceVar(&flagExclude, "exclude", nil,
		"features to leave out")
	extractCmd.Flags().IntVar(&flagWorkers, "workers", 0,
		"concurrent curves (default GOMAXPROCS)")
	extractCmd.Flags().Uint64Var(&flagSeed, "seed", 0,
		"random seed for repeatable runs (0 seeds from the clock)")
	extractCmd.Flags().StringVar(&flagFormat, "format", "",
		"output format, csv or json (default csv)")
	rootCmd.AddCommand(extractCmd)
}

// result is one processed curve: its flattened features or the error
// that stopped it.
type result struct {
	id    string
	named []extractor.Named
	err   error
}

// job pairs an input with the channel its result comes back on.
type job struct {
	id  string
	rch chan result
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("only") {
		cfg.Only = flagOnly
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = flagExclude
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flagFormat
	}

	logger := newLogger()
	var opts []featex.Option
	if len(cfg.Only) > 0 {
		opts = append(opts, featex.WithOnly(cfg.Only...))
	}
	if len(cfg.Exclude) > 0 {
		opts = append(opts, featex.WithExclude(cfg.Exclude...))
	}
	if len(cfg.Data) > 0 {
		kinds := make([]lightcurve.Kind, len(cfg.Data))
		for i, s := range cfg.Data {
			k, err := lightcurve.ParseKind(s)
			if err != nil {
				return err
			}
			kinds[i] = k
		}
		opts = append(opts, featex.WithData(kinds...))
	}
	opts = append(opts,
		featex.WithLogger(logger),
		featex.WithRandSeed(cfg.Seed),
	)
	space, err := featex.New(opts...)
	if err != nil {
		return err
	}
	logger.Info("extraction plan built", "features", len(space.Features()))

	// the concurrent part: a dispatcher hands each file to a worker and
	// queues a return channel per file, so output keeps input order no
	// matter which worker finishes first.
	maxWorkers := cfg.Workers
	if maxWorkers < 1 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	prCh := make(chan chan result, maxWorkers*2)
	jobCh := make(chan job)
	go func() {
		for _, path := range args {
			rch := make(chan result, 1)
			jobCh <- job{id: path, rch: rch}
			prCh <- rch
		}
		close(jobCh)
		close(prCh)
	}()

	ctx := cmd.Context()
	for n := 0; n < maxWorkers; n++ {
		go func() {
			for j := range jobCh {
				j.rch <- processFile(ctx, space, cfg, j.id)
			}
		}()
	}

	w := newResultWriter(os.Stdout, cfg.Output.Format)
	var failed int
	for rch := range prCh {
		r := <-rch
		if r.err != nil {
			logger.Error("curve failed", "file", r.id, "error", r.err)
			failed++
			continue
		}
		if err := w.write(r); err != nil {
			return err
		}
	}
	if err := w.flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d curves failed", failed, len(args))
	}
	return nil
}

// processFile loads one input and runs the plan on it.
func processFile(ctx context.Context, space *featex.FeatureSpace, cfg *Config, path string) result {
	lc, err := loadCurve(cfg, path)
	if err != nil {
		return result{id: path, err: err}
	}
	set, err := space.Extract(ctx, lc)
	if err != nil {
		return result{id: path, err: err}
	}
	return result{id: path, named: set.Flatten()}
}

// loadCurve reads either a MACHO archive (two bands, aligned) or a
// plain single-band table.
func loadCurve(cfg *Config, path string) (*lightcurve.LightCurve, error) {
	if strings.HasSuffix(path, ".tar.bz2") {
		d, err := dataset.LoadMACHO(path)
		if err != nil {
			return nil, err
		}
		return d.LightCurve(cfg.Bands.Primary, cfg.Bands.Secondary)
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	t, m, e, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lightcurve.New().
		Set(lightcurve.Time, t).
		Set(lightcurve.Magnitude, m).
		Set(lightcurve.Error, e), nil
}

// readTable parses a whitespace separated time, magnitude, error table.
func readTable(r io.Reader) (t, m, e []float64, err error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, nil, nil, fmt.Errorf("short row %q", line)
		}
		var vals [3]float64
		for i := 0; i < 3; i++ {
			if vals[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
				return nil, nil, nil, err
			}
		}
		t = append(t, vals[0])
		m = append(m, vals[1])
		e = append(e, vals[2])
	}
	return t, m, e, nil
}

// resultWriter renders rows as CSV with a header, or as JSON objects
// one per line.
type resultWriter struct {
	format string
	csv    *csv.Writer
	json   *json.Encoder
	header []string
}

func newResultWriter(w io.Writer, format string) *resultWriter {
	rw := &resultWriter{format: format}
	if format == "json" {
		rw.json = json.NewEncoder(w)
	} else {
		rw.csv = csv.NewWriter(w)
	}
	return rw
}

func (rw *resultWriter) write(r result) error {
	if rw.json != nil {
		row := make(map[string]any, len(r.named)+1)
		row["id"] = r.id
		for _, nv := range r.named {
			row[nv.Name] = nv.Value
		}
		return rw.json.Encode(row)
	}

	if rw.header == nil {
		rw.header = []string{"id"}
		for _, nv := range r.named {
			rw.header = append(rw.header, nv.Name)
		}
		if err := rw.csv.Write(rw.header); err != nil {
			return err
		}
	}
	row := []string{r.id}
	for _, nv := range r.named {
		row = append(row, strconv.FormatFloat(nv.Value, 'g', -1, 64))
	}
	rw.csv.Write(row)
	return rw.csv.Error()
}

func (rw *resultWriter) flush() error {
	if rw.csv != nil {
		rw.csv.Flush()
		return rw.csv.Error()
	}
	return nil
}
