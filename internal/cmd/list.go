package cmd

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/foldermatch/internal/display"
)

// NewListCommand creates the list subcommand
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <substring>",
		Short: "List every file whose name contains a substring",
		Long: `List every file below --dir whose name contains <substring>, ignoring case,
and whose extension passes the extension filter.

Files are listed in directory traversal order. Finding nothing is not an
error: the command prints nothing (or an empty array for json/yaml).

Examples:
  foldermatch list SM0 --dir folder1
  foldermatch list SM0 --ext .txt
  foldermatch list SM0 --no-ext --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
		SilenceUsage: true,
	}

	return cmd
}

func runList(cmd *cobra.Command, substring string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	matches, err := s.matcher.FindAll(substring, s.ext)
	s.logLookup("list", substring, len(matches), start, err)
	if err != nil {
		return err
	}

	return s.emit(func(w io.Writer, format string) error {
		return display.RenderMatches(w, format, matches)
	})
}
