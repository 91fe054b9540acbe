package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
	Plain      bool     // Disable ANSI colors
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	if !w.Plain {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Matching file:\n")
		} else {
			b.WriteString("Matching files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !w.Plain {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// AmbiguousMatchWarning builds the warning shown when a single-result lookup
// matched several files.
func AmbiguousMatchWarning(query, extension string, paths []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("%d files match '%s' with extension '%s'", len(paths), query, extension),
		Message:    "Exactly one match is required",
		Files:      paths,
		Suggestion: "Narrow the query or the extension filter, or use 'foldermatch list' to see every match",
	}
}
