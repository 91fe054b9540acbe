package display

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/harrison/foldermatch/internal/config"
	"github.com/harrison/foldermatch/internal/matcher"
)

// RenderMatches writes a list of matches in the requested format.
// Text output prints "Path: ..." and "Filename: ..." lines per match; json and
// yaml emit an array (empty, never null, when nothing matched).
func RenderMatches(out io.Writer, format string, matches []matcher.Match) error {
	if matches == nil {
		matches = []matcher.Match{}
	}

	switch format {
	case config.FormatJSON:
		return writeJSON(out, matches)
	case config.FormatYAML:
		return writeYAML(out, matches)
	case config.FormatText, "":
		for _, m := range matches {
			if _, err := fmt.Fprintf(out, "Path: %s\nFilename: %s\n", m.Path, m.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// RenderMatch writes a single match.
func RenderMatch(out io.Writer, format string, match matcher.Match) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(out, match)
	case config.FormatYAML:
		return writeYAML(out, match)
	case config.FormatText, "":
		_, err := fmt.Fprintf(out, "Path: %s\nFilename: %s\n", match.Path, match.Name)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// RenderLocation writes a directory/filename pair.
func RenderLocation(out io.Writer, format string, loc matcher.Location) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(out, loc)
	case config.FormatYAML:
		return writeYAML(out, loc)
	case config.FormatText, "":
		_, err := fmt.Fprintf(out, "Path: %s\nFilename: %s\n", loc.Dir, loc.Name)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
