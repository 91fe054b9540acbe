package cmd

import (
	"github.com/harrison/foldermatch/internal/matcher"
)

// Process exit statuses
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitNotFound         = 2
	ExitAmbiguousMatch   = 3
	ExitInvalidDirectory = 4
)

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	kind, ok := matcher.KindOf(err)
	if !ok {
		return ExitFailure
	}

	switch kind {
	case matcher.KindNotFound:
		return ExitNotFound
	case matcher.KindAmbiguousMatch:
		return ExitAmbiguousMatch
	case matcher.KindInvalidDirectory:
		return ExitInvalidDirectory
	default:
		return ExitFailure
	}
}
