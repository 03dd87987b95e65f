// Package cli provides the command-line interface for color-utils.
package cli

import (
	"os"

	"github.com/greghuntoon-figma/color-utils/internal/version"
	"github.com/hashicorp/go-hclog"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootOptions carries the global flags and logger shared by all commands.
type rootOptions struct {
	verbose  bool
	noColour bool
	logger   hclog.Logger
}

// NewRootCmd builds the root command and its subcommand tree. A fresh
// tree is built per call so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "color-utils",
		Short: "Deterministic colour naming, conversion and tonal ramps",
		Long: `color-utils converts colours between hex, RGB, HSL and HSV, names any
colour with a deterministic human-readable classification, and derives
a 10-step tonal ramp with WCAG contrast metrics for each step.

The same input always produces the same output: naming uses fixed hue
bands and an arithmetic hash, never a random source.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Warn
			if opts.verbose {
				level = hclog.Debug
			}
			opts.logger = hclog.New(&hclog.LoggerOptions{
				Name:   "color-utils",
				Level:  level,
				Output: cmd.ErrOrStderr(),
				Color:  hclog.AutoColor,
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "disable colour output and previews")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(
		newClassifyCmd(opts),
		newPaletteCmd(opts),
		newConvertCmd(opts),
		newBlendCmd(opts),
		newRandomCmd(opts),
		newVersionCmd(),
	)

	// Styled help only when talking to a terminal.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	return rootCmd
}
