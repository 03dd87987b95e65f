package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
	"github.com/spf13/cobra"
)

// newBlendCmd builds the blend command.
func newBlendCmd(opts *rootOptions) *cobra.Command {
	var (
		weights string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "blend <colour> <colour> <colour>",
		Short: "Blend three colours by barycentric weights",
		Long: `Blend three anchor colours in RGB space.

Weights are normalised by their sum, so "2,1,1" means half of the first
anchor and a quarter of each of the others. Negative weights clamp to
zero; all-zero weights blend equally.

Examples:
  # Equal three-way blend
  color-utils blend "#FF0000" "#00FF00" "#0000FF"

  # Weighted towards the first anchor
  color-utils blend --weights 2,1,1 crimson gold navy`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, v, w, err := parseWeights(weights)
			if err != nil {
				return err
			}

			opts.logger.Debug("blending colours", "weights", weights)

			hex, err := colour.InterpolateHex(
				resolveColourArg(args[0]),
				resolveColourArg(args[1]),
				resolveColourArg(args[2]),
				u, v, w)
			if err != nil {
				return fmt.Errorf("failed to blend colours: %w", err)
			}

			out := cmd.OutOrStdout()
			rgb, _ := colour.HexToRGB(hex)
			if opts.previewEnabled(preview, out) {
				fmt.Fprintln(out, colour.FormatColourWithPreview(rgb, 10))
				return nil
			}
			fmt.Fprintln(out, hex)
			return nil
		},
	}

	cmd.Flags().StringVar(&weights, "weights", "1,1,1", "comma-separated barycentric weights (u,v,w)")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

// parseWeights parses a "u,v,w" flag value into three floats.
func parseWeights(s string) (u, v, w float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid weights %q (expected three comma-separated values)", s)
	}

	vals := make([]float64, 3)
	for i, part := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid weight %q: %w", part, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}
