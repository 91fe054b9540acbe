// Package display renders lookup results and user-facing warnings.
//
// Results are written in one of three formats selected by config.Format:
//
//   - text: "Path: <path>" and "Filename: <name>" lines, one pair per file.
//     For a located file the Path line carries the parent directory.
//   - json: an indented object (single result) or array (list).
//   - yaml: the same shapes encoded with gopkg.in/yaml.v3.
//
// Warnings are multi-line, yellow by default, with optional message, file
// list and suggestion:
//
//	⚠️  Warning: 2 files match 'SM0' with extension '.txt'
//	    Exactly one match is required
//	    Matching files:
//	      1. /data/SM0_data.txt
//	      2. /data/SM0_notes.txt
//	    Suggestion:
//	    Narrow the query or the extension filter, or use 'foldermatch list' to see every match
package display
