package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/greghuntoon-figma/color-utils/internal/colour"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"
	"golang.org/x/term"
)

// resolveColourArg turns a CLI colour argument into a hex string. SVG 1.1
// colour names resolve through x/image/colornames; anything else passes
// through for the library's hex parser to validate.
func resolveColourArg(arg string) string {
	if c, ok := colornames.Map[strings.ToLower(arg)]; ok {
		return colour.RGB{R: c.R, G: c.G, B: c.B}.Hex()
	}
	return arg
}

// previewEnabled reports whether ANSI previews should be emitted: only
// when requested, colour output is on, and the writer is a terminal.
func (o *rootOptions) previewEnabled(requested bool, w io.Writer) bool {
	if !requested || o.noColour {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeOutput writes command output to a file when a path is given,
// stdout otherwise.
func writeOutput(cmd *cobra.Command, path, content string, logger hclog.Logger) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	logger.Debug("writing output file", "path", path)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
