package cmd

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/foldermatch/internal/display"
)

// NewLocateCommand creates the locate subcommand
func NewLocateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <pattern>",
		Short: "Locate the one file whose name matches a wildcard pattern",
		Long: `Locate the single file below --dir whose name matches the shell wildcard
<pattern> and whose extension passes the extension filter. Prints the
directory containing the file and its filename separately.

Patterns use * (any run of characters), ? (one character) and [...] / [!...]
character classes, and must match the whole filename. A [ without a closing ]
matches itself. Matching is case-sensitive except on Windows. Quote the
pattern so the shell does not expand it.

Exactly one file must match: status 2 when none does, status 3 when several
do.

Examples:
  foldermatch locate '*S*VAL*CRC*'
  foldermatch locate 'report_??.csv' --dir /data --ext .csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args[0])
		},
		SilenceUsage: true,
	}

	return cmd
}

func runLocate(cmd *cobra.Command, pattern string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	loc, err := s.matcher.Locate(pattern, s.ext)
	s.logLookup("locate", pattern, countOne(err), start, err)
	if err != nil {
		s.warnAmbiguous(err)
		return err
	}

	return s.emit(func(w io.Writer, format string) error {
		return display.RenderLocation(w, format, loc)
	})
}
