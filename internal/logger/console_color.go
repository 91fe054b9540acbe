package logger

import (
	"github.com/fatih/color"
)

// colorScheme defines consistent colors for lookup outcomes.
// Green: lookups that returned files
// Red: failed lookups
// Yellow: lookups that returned nothing
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
}

// newColorScheme creates the standard color scheme for lookup outcomes, with
// colors enabled regardless of the stdout-based color.NoColor default.
func newColorScheme() *colorScheme {
	cs := &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
	}
	cs.success.EnableColor()
	cs.fail.EnableColor()
	cs.warn.EnableColor()
	return cs
}

// formatColorizedOutcome colors formatOutcome's text by result: red for
// errors, yellow for an empty list, green otherwise.
func formatColorizedOutcome(summary LookupSummary, scheme *colorScheme) string {
	text := formatOutcome(summary)
	switch {
	case summary.Err != nil:
		return scheme.fail.Sprint(text)
	case summary.Matches == 0:
		return scheme.warn.Sprint(text)
	default:
		return scheme.success.Sprint(text)
	}
}
