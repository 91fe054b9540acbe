package cmd

import (
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/foldermatch/internal/display"
	"github.com/harrison/foldermatch/internal/matcher"
)

// NewFindCommand creates the find subcommand
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <substring>",
		Short: "Find the one file whose name contains a substring",
		Long: `Find the single file below --dir whose name contains <substring>, ignoring
case, and whose extension passes the extension filter. Prints its full path
and filename.

Exactly one file must match. When none does the command exits with status 2;
when several do it lists them and exits with status 3.

Examples:
  foldermatch find SM0 --ext .txt
  foldermatch find report --dir /data --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args[0])
		},
		SilenceUsage: true,
	}

	return cmd
}

func runFind(cmd *cobra.Command, substring string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	match, err := s.matcher.FindOne(substring, s.ext)
	s.logLookup("find", substring, countOne(err), start, err)
	if err != nil {
		s.warnAmbiguous(err)
		return err
	}

	return s.emit(func(w io.Writer, format string) error {
		return display.RenderMatch(w, format, match)
	})
}

// countOne is the match count reported for a single-result lookup.
func countOne(err error) int {
	if err != nil {
		return 0
	}
	return 1
}

// warnAmbiguous prints the conflicting paths of an ambiguous lookup to stderr.
func (s *session) warnAmbiguous(err error) {
	var le *matcher.LookupError
	if !errors.As(err, &le) || le.Kind != matcher.KindAmbiguousMatch {
		return
	}
	w := display.AmbiguousMatchWarning(le.Query, le.Extension.String(), le.Paths)
	w.Plain = !s.colorOut
	w.Display(s.cmd.ErrOrStderr())
}
