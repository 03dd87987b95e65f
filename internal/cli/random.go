package cli

import (
	"encoding/json"
	"fmt"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
	"github.com/spf13/cobra"
)

// newRandomCmd builds the random command.
func newRandomCmd(opts *rootOptions) *cobra.Command {
	var (
		count   int
		seed    uint64
		style   string
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random colours",
		Long: `Generate random colours, optionally from a restricted space.

Style "warm" draws darker, muted colours and "happy" draws bright,
saturated ones; "any" samples the full RGB cube. A non-zero --seed makes
the output fully reproducible.

Examples:
  # One random colour
  color-utils random

  # Reproducible batch of warm colours
  color-utils random --count 8 --style warm --seed 42

  # Bright colours as JSON
  color-utils random --count 4 --style happy --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("invalid count: %d (must be at least 1)", count)
			}

			var pick func() colour.RGB
			rng := colour.NewRand(seed)
			switch style {
			case "any":
				pick = func() colour.RGB { return colour.Random(rng) }
			case "warm":
				pick = func() colour.RGB { return colour.RandomWarm(rng) }
			case "happy":
				pick = func() colour.RGB { return colour.RandomHappy(rng) }
			default:
				return fmt.Errorf("invalid style: %s (valid: any, warm, happy)", style)
			}

			opts.logger.Debug("generating random colours", "count", count, "style", style, "seed", seed)

			colours := make([]colour.RGB, count)
			for i := range colours {
				colours[i] = pick()
			}

			out := cmd.OutOrStdout()
			switch format {
			case "hex":
				showPreview := opts.previewEnabled(preview, out)
				for _, rgb := range colours {
					if showPreview {
						fmt.Fprintln(out, colour.FormatColourWithPreview(rgb, 8))
					} else {
						fmt.Fprintln(out, rgb.Hex())
					}
				}
				return nil
			case "rgb":
				for _, rgb := range colours {
					fmt.Fprintln(out, rgb)
				}
				return nil
			case "json":
				type entry struct {
					Hex string     `json:"hex"`
					RGB colour.RGB `json:"rgb"`
				}
				entries := make([]entry, count)
				for i, rgb := range colours {
					entries[i] = entry{Hex: rgb.Hex(), RGB: rgb}
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
			}
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of colours to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks a fresh one)")
	cmd.Flags().StringVar(&style, "style", "any", "sampling style (any, warm, happy)")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, rgb, json)")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}
