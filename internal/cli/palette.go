package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
	"github.com/greghuntoon-figma/color-utils/internal/export"
	"github.com/greghuntoon-figma/color-utils/internal/util"
	"github.com/spf13/cobra"
)

// newPaletteCmd builds the palette command.
func newPaletteCmd(opts *rootOptions) *cobra.Command {
	var (
		format  string
		output  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "palette <colour>",
		Short: "Generate a 10-step tonal ramp with WCAG contrast metrics",
		Long: `Generate a tonal ramp from a base colour.

The ramp has 10 steps labelled 50 through 900, ordered light to dark.
The base colour slots into the step whose target lightness it sits
closest to and passes through unchanged; the other steps are synthesized
at fixed lightness targets with the base hue. Every step carries WCAG
contrast ratios against white and near-black text with AAA/AA/Fail
classification.

Examples:
  # Ramp as a text table
  color-utils palette "#3B82F6"

  # Ramp with terminal swatches
  color-utils palette --preview "#3B82F6"

  # Ramp as JSON
  color-utils palette --format json steelblue

  # CSS custom properties written to a file
  color-utils palette --format css --output ramp.css "#3B82F6"

  # Tailwind colour block
  color-utils palette --format tailwind "#3B82F6"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex := resolveColourArg(args[0])
			opts.logger.Debug("generating palette", "input", args[0], "hex", hex)

			p, err := colour.GeneratePalette(hex)
			if err != nil {
				return fmt.Errorf("failed to generate palette: %w", err)
			}

			var content string
			switch format {
			case "text":
				content = formatPaletteText(p, opts.previewEnabled(preview, cmd.OutOrStdout()))
			case "json":
				data, err := p.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode JSON: %w", err)
				}
				content = string(data) + "\n"
			case "css":
				data, err := export.CSS(p)
				if err != nil {
					return fmt.Errorf("failed to render CSS: %w", err)
				}
				content = string(data)
			case "tailwind":
				data, err := export.TailwindConfig(p)
				if err != nil {
					return fmt.Errorf("failed to render Tailwind config: %w", err)
				}
				content = string(data)
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json, css, tailwind)", format)
			}

			return writeOutput(cmd, output, content, opts.logger)
		},
	}

	addFormatFlag(cmd.Flags(), &format, "output format (text, json, css, tailwind)")
	addOutputFlag(cmd.Flags(), &output)
	addPreviewFlag(cmd.Flags(), &preview)

	return cmd
}

// formatPaletteText renders the ramp as an aligned table, one step per
// row, with the chosen step marked.
func formatPaletteText(p colour.Palette, showPreview bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s), chosen step %d\n\n", p.Name, p.TokenName, p.ChosenStep)

	if showPreview {
		for _, step := range p.Steps {
			rgb, _ := colour.HexToRGB(step.Hex)
			marker := " "
			if step.IsChosenColour {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s %s %3d  %-8s  %5.2f %-4s  %5.2f %-4s\n",
				colour.ColourPreviewWithText(rgb, util.StripHash(step.Hex), 8),
				marker, step.Step, step.Hex,
				step.ContrastWhite, step.WCAGWhite,
				step.ContrastDark, step.WCAGDark)
		}
		return b.String()
	}

	table := NewTable([]string{"STEP", "HEX", "VS WHITE", "WCAG", "VS DARK", "WCAG", "CHOSEN"})
	table.SetColumnRightAlign(0)
	table.SetColumnRightAlign(2)
	table.SetColumnRightAlign(4)
	for _, step := range p.Steps {
		marker := ""
		if step.IsChosenColour {
			marker = "*"
		}
		table.AddRow([]string{
			strconv.Itoa(step.Step),
			step.Hex,
			fmt.Sprintf("%.2f", step.ContrastWhite),
			string(step.WCAGWhite),
			fmt.Sprintf("%.2f", step.ContrastDark),
			string(step.WCAGDark),
			marker,
		})
	}
	b.WriteString(table.Render())

	return b.String()
}
