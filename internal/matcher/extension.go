package matcher

// anyExtensionMarker is the user-facing spelling of AnyExtension.
const anyExtensionMarker = ".*"

type extensionMode int

const (
	extensionAny extensionMode = iota
	extensionNone
	extensionExact
)

// Extension selects which file suffixes a lookup accepts: any suffix, no
// suffix, or exactly one suffix. The zero value is AnyExtension.
type Extension struct {
	mode  extensionMode
	value string
}

// AnyExtension accepts every file regardless of suffix.
func AnyExtension() Extension {
	return Extension{mode: extensionAny}
}

// NoExtension accepts only files with an empty suffix.
func NoExtension() Extension {
	return Extension{mode: extensionNone}
}

// ExactExtension accepts only files whose suffix equals ext byte for byte.
// ext must include the leading dot (".txt"); "txt" matches nothing.
// ExactExtension(".*") is the same as AnyExtension.
func ExactExtension(ext string) Extension {
	if ext == anyExtensionMarker {
		return AnyExtension()
	}
	return Extension{mode: extensionExact, value: ext}
}

// ParseExtension maps command-line input to an Extension: ".*" is any
// extension, the empty string is no extension, anything else is exact.
func ParseExtension(s string) Extension {
	switch s {
	case anyExtensionMarker:
		return AnyExtension()
	case "":
		return NoExtension()
	default:
		return ExactExtension(s)
	}
}

// Accepts reports whether a file suffix passes the filter.
func (e Extension) Accepts(suffix string) bool {
	switch e.mode {
	case extensionNone:
		return suffix == ""
	case extensionExact:
		return suffix == e.value
	default:
		return true
	}
}

// String renders the filter the way it is spelled on the command line; the
// no-extension filter renders as "None".
func (e Extension) String() string {
	switch e.mode {
	case extensionNone:
		return "None"
	case extensionExact:
		return e.value
	default:
		return anyExtensionMarker
	}
}
