package cli

import (
	"encoding/json"
	"fmt"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
	"github.com/spf13/cobra"
)

// conversionResult is the JSON shape of the convert command's output.
type conversionResult struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
	HSL colour.HSL `json:"hsl"`
	HSV colour.HSV `json:"hsv"`
}

// newConvertCmd builds the convert command.
func newConvertCmd(opts *rootOptions) *cobra.Command {
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in hex, RGB, HSL and HSV",
		Long: `Convert a colour into all four supported representations.

Examples:
  # All representations of a hex colour
  color-utils convert "#FF5733"

  # Shorthand hex expands before converting
  color-utils convert "#F53"

  # As JSON
  color-utils convert --format json goldenrod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex := resolveColourArg(args[0])
			opts.logger.Debug("converting colour", "input", args[0], "hex", hex)

			rgb, err := colour.HexToRGB(hex)
			if err != nil {
				return fmt.Errorf("failed to parse colour: %w", err)
			}

			result := conversionResult{
				Hex: rgb.Hex(),
				RGB: rgb,
				HSL: colour.RGBToHSL(rgb),
				HSV: colour.RGBToHSV(rgb),
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				if opts.previewEnabled(preview, out) {
					fmt.Fprintln(out, colour.ColourPreview(rgb, 10))
				}
				fmt.Fprintf(out, "hex: %s\n", result.Hex)
				fmt.Fprintf(out, "rgb: %s\n", result.RGB)
				fmt.Fprintf(out, "hsl: %s\n", result.HSL)
				fmt.Fprintf(out, "hsv: %s\n", result.HSV)
				return nil
			case "json":
				data, err := json.MarshalIndent(result, "", "  ")
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
