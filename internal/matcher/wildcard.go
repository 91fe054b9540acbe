package matcher

import (
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// wildcard is a compiled basename glob with fnmatch syntax: `*` any run of
// characters, `?` one character, `[...]` a class and `[!...]` a negated
// class. Every pattern is valid; a `[` without a closing `]` is a literal.
type wildcard struct {
	pattern string
	fold    bool
}

// compileWildcard prepares pattern for matching basenames. Matching is
// case-insensitive on windows and case-sensitive everywhere else.
func compileWildcard(pattern string) *wildcard {
	translated := translateFnmatch(pattern)
	fold := runtime.GOOS == "windows"
	if fold {
		translated = strings.ToLower(translated)
	}
	return &wildcard{pattern: translated, fold: fold}
}

// Match reports whether name matches the pattern.
func (w *wildcard) Match(name string) bool {
	if w.fold {
		name = strings.ToLower(name)
	}
	ok, err := doublestar.Match(w.pattern, name)
	return err == nil && ok
}

// translateFnmatch rewrites an fnmatch pattern into doublestar syntax with the
// same meaning. Outside classes `{`, `}` and `\` are escaped. An unclosed `[`
// is escaped. Inside a class only a leading `!` negates: a leading `^` or `]`
// and every `\` are escaped so they match themselves.
func translateFnmatch(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 4)

	n := len(pattern)
	for i := 0; i < n; i++ {
		c := pattern[i]
		switch c {
		case '{', '}', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			writeClass(&b, pattern[i+1:end])
			i = end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// classEnd returns the index of the `]` closing the class opened at
// pattern[open], or -1 when the class is never closed. A `]` right after the
// opening bracket (or after `[!`) is a member, not the end.
func classEnd(pattern string, open int) int {
	j := open + 1
	if j < len(pattern) && pattern[j] == '!' {
		j++
	}
	if j < len(pattern) && pattern[j] == ']' {
		j++
	}
	for j < len(pattern) && pattern[j] != ']' {
		j++
	}
	if j >= len(pattern) {
		return -1
	}
	return j
}

// writeClass writes a bracketed class whose members are body.
func writeClass(b *strings.Builder, body string) {
	b.WriteByte('[')
	if strings.HasPrefix(body, "!") {
		b.WriteByte('!')
		body = body[1:]
	}
	for k := 0; k < len(body); k++ {
		c := body[k]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case k == 0 && (c == '^' || c == ']'):
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(']')
}
