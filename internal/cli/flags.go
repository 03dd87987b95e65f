package cli

import "github.com/spf13/pflag"

// Shared flag registrations so every command spells the common flags
// the same way.

// addFormatFlag registers the --format flag on a command's flag set.
func addFormatFlag(fs *pflag.FlagSet, target *string, usage string) {
	fs.StringVarP(target, "format", "f", "text", usage)
}

// addOutputFlag registers the --output flag on a command's flag set.
func addOutputFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "output", "o", "", "output file (default: stdout)")
}

// addPreviewFlag registers the --preview flag on a command's flag set.
func addPreviewFlag(fs *pflag.FlagSet, target *bool) {
	fs.BoolVar(target, "preview", false, "show colour previews in terminal (TTY only)")
}
