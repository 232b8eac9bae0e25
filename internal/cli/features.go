package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrolab/featex/extractor"
	_ "github.com/astrolab/featex/extractors" // register the catalogue
	"github.com/astrolab/featex/lightcurve"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the registered features",
	Long: `Features prints every feature the registry can compute, with the
light-curve vectors its extractor reads and the features it depends on.`,
	Args: cobra.NoArgs,
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range extractor.Default.Available() {
		ext, _ := extractor.Default.Lookup(name)
		nfo := ext.Info()
		fmt.Fprintf(out, "%s\n    data: %s\n", name, joinKinds(nfo.Data))
		if len(nfo.Dependencies) > 0 {
			fmt.Fprintf(out, "    depends: %s\n",
				strings.Join(nfo.Dependencies, ", "))
		}
	}
	return nil
}

func joinKinds(kinds []lightcurve.Kind) string {
	ss := make([]string, len(kinds))
	for i, k := range kinds {
		ss[i] = string(k)
	}
	return strings.Join(ss, ", ")
}
