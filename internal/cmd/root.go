package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for foldermatch
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foldermatch",
		Short: "Find files in a directory tree by name",
		Long: `foldermatch locates files below a directory by matching their names.

Names are matched either by a case-insensitive substring (list, find) or by a
shell wildcard such as *S*VAL*CRC* (locate). Every lookup also filters by
extension: ".*" accepts any extension, --no-ext accepts only files without
one, and any other value (".txt") must equal the file's extension exactly.

Configuration is loaded from the nearest .foldermatch/config.yaml if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once, with the mapped exit code
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("dir", "d", ".", "Directory to search (checked on every lookup)")
	flags.StringP("ext", "e", "", `Extension filter: ".*" for any, or a literal suffix like ".txt" (default from config: ".*")`)
	flags.Bool("no-ext", false, "Only match files without an extension")
	flags.StringP("format", "f", "", "Output format: text, json, yaml (default from config: text)")
	flags.StringP("output", "o", "", "Write results to this file instead of stdout")
	flags.String("config", "", "Path to config file (default: nearest .foldermatch/config.yaml)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error (default from config: warn)")
	flags.String("log-dir", "", "Directory for per-run log files")
	flags.Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewLocateCommand())

	return cmd
}
