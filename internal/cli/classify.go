package cli

import (
	"encoding/json"
	"fmt"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
	"github.com/greghuntoon-figma/color-utils/internal/util"
	"github.com/spf13/cobra"
)

// newClassifyCmd builds the classify command.
func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "classify <colour>",
		Short: "Name a colour deterministically",
		Long: `Classify a colour into a deterministic human-readable name.

The name combines a tone adjective (driven by saturation and lightness)
with a hue family (driven by the hue angle). Near-grey colours classify
as Neutral. The same colour always yields the same name.

Colour arguments accept 3- or 6-digit hex (with or without #) and
SVG 1.1 colour names.

Examples:
  # Classify a hex colour
  color-utils classify "#3B82F6"

  # Classify a named colour as JSON
  color-utils classify --format json tomato

  # Include a terminal swatch
  color-utils classify --preview "#3B82F6"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex := resolveColourArg(args[0])
			opts.logger.Debug("classifying colour", "input", args[0], "hex", hex)

			c, err := colour.Classify(hex)
			if err != nil {
				return fmt.Errorf("failed to classify colour: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				if opts.previewEnabled(preview, out) {
					rgb, _ := colour.HexToRGB(hex)
					fmt.Fprintln(out, colour.ColourPreviewWithText(rgb, util.StripHash(rgb.Hex()), 10))
				}
				fmt.Fprintf(out, "%-11s %s\n", "name:", c.FullName)
				fmt.Fprintf(out, "%-11s %s\n", "token:", c.TokenName)
				fmt.Fprintf(out, "%-11s %s\n", "tone:", c.Tone)
				fmt.Fprintf(out, "%-11s %s\n", "hue group:", c.HueGroup)
				fmt.Fprintf(out, "%-11s %s\n", "hsl:", c.HSL)
				return nil
			case "json":
				data, err := json.MarshalIndent(c, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	addFormatFlag(cmd.Flags(), &format, "output format (text, json)")
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}
