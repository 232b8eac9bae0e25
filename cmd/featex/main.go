// Command featex extracts time-series features from astronomical light
// curves.
package main

import (
	"os"

	"github.com/astrolab/featex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
