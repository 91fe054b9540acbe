package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies why a lookup failed.
type ErrorKind int

const (
	// KindInvalidDirectory means the root does not exist or is not a directory.
	KindInvalidDirectory ErrorKind = iota
	// KindNotFound means no file passed the name and extension tests.
	KindNotFound
	// KindAmbiguousMatch means more than one file passed a single-result lookup.
	KindAmbiguousMatch
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDirectory:
		return "invalid directory"
	case KindNotFound:
		return "not found"
	case KindAmbiguousMatch:
		return "ambiguous match"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is checks against a *LookupError.
var (
	ErrInvalidDirectory = errors.New("invalid directory")
	ErrNotFound         = errors.New("no matching file")
	ErrAmbiguousMatch   = errors.New("multiple matching files")
)

// LookupError describes a failed lookup.
type LookupError struct {
	Kind      ErrorKind
	Root      string    // Resolved root directory of the matcher
	Query     string    // Substring or wildcard pattern
	Extension Extension // Extension filter in effect
	Paths     []string  // Conflicting full paths, set for KindAmbiguousMatch
	Err       error     // Underlying error (optional)
}

// Error implements the error interface for LookupError.
func (e *LookupError) Error() string {
	switch e.Kind {
	case KindInvalidDirectory:
		return fmt.Sprintf("%s is not a valid directory.", e.Root)
	case KindNotFound:
		return fmt.Sprintf("No files found matching '%s' with extension '%s'.", e.Query, e.Extension)
	case KindAmbiguousMatch:
		quoted := make([]string, len(e.Paths))
		for i, p := range e.Paths {
			quoted[i] = "'" + p + "'"
		}
		return fmt.Sprintf("Multiple files found matching '%s' with extension '%s': [%s]",
			e.Query, e.Extension, strings.Join(quoted, ", "))
	default:
		return "lookup failed"
	}
}

// Unwrap returns the underlying error for error wrapping support.
func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *LookupError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidDirectory:
		return ErrInvalidDirectory
	case KindNotFound:
		return ErrNotFound
	case KindAmbiguousMatch:
		return ErrAmbiguousMatch
	default:
		return nil
	}
}

// KindOf extracts the ErrorKind from err. The boolean is false when err is
// not (and does not wrap) a *LookupError.
func KindOf(err error) (ErrorKind, bool) {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return 0, false
}
