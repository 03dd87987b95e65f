// color-utils - Deterministic colour naming, conversion and tonal ramps
//
// color-utils converts colours between hex, RGB, HSL and HSV, gives any
// colour a stable human-readable name, and derives 10-step tonal ramps
// with WCAG contrast metrics.
package main

import (
	"os"

	"github.com/greghuntoon-figma/color-utils/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
