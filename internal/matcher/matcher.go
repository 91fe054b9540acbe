// Package matcher locates files under a root directory by name.
//
// A Matcher answers three lookups against its root:
//
//   - FindAll returns every file whose basename contains a substring
//     (case-insensitive), in traversal order. Zero matches is not an error.
//   - FindOne requires exactly one substring match and returns its full path.
//   - Locate requires exactly one shell-wildcard match and returns its parent
//     directory and basename separately.
//
// Every lookup also applies an Extension filter and re-walks the tree; nothing
// is cached between calls.
//
// The root is resolved when the Matcher is built but validated only when a
// lookup runs, so a Matcher may be created before its directory exists.
// Callers rely on this: do not add an existence check to New.
package matcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/foldermatch/internal/fileutil"
)

// Logger is the subset of the logger package used during lookups.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Match is a matched file: its full path and its basename.
type Match struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
}

// Location is a matched file split into parent directory and basename.
// filepath.Join(Dir, Name) is the full path.
type Location struct {
	Dir  string `json:"dir" yaml:"dir"`
	Name string `json:"name" yaml:"name"`
}

// Matcher looks up files below a fixed root directory. It holds no mutable
// state and is safe for concurrent use.
type Matcher struct {
	root   string
	logger Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger attaches a logger that receives scan diagnostics.
func WithLogger(l Logger) Option {
	return func(m *Matcher) {
		m.logger = l
	}
}

// New creates a Matcher rooted at dir. The path is made absolute and, when it
// exists, symlinks in it are resolved. New does not check that dir exists or
// is a directory; each lookup does.
func New(dir string, opts ...Option) (*Matcher, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	m := &Matcher{root: root}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Root returns the resolved root directory.
func (m *Matcher) Root() string {
	return m.root
}

// FindAll returns every file below the root whose basename contains substring,
// ignoring case, and whose suffix passes ext. The result is in traversal order
// and is empty, not nil, when nothing matches.
func (m *Matcher) FindAll(substring string, ext Extension) ([]Match, error) {
	files, err := m.collect(substring, ext, substringTest(substring))
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(files))
	for _, c := range files {
		matches = append(matches, Match{Path: c.Path, Name: c.Name})
	}
	return matches, nil
}

// FindOne returns the single file matching substring and ext, as FindAll
// would select it. It fails with ErrNotFound when nothing matches and with
// ErrAmbiguousMatch, listing every conflicting path, when several do.
func (m *Matcher) FindOne(substring string, ext Extension) (Match, error) {
	files, err := m.collect(substring, ext, substringTest(substring))
	if err != nil {
		return Match{}, err
	}

	c, err := m.single(files, substring, ext)
	if err != nil {
		return Match{}, err
	}
	return Match{Path: c.Path, Name: c.Name}, nil
}

// Locate returns the directory and basename of the single file whose basename
// matches the shell wildcard pattern and whose suffix passes ext. Cardinality
// is enforced as in FindOne.
func (m *Matcher) Locate(pattern string, ext Extension) (Location, error) {
	files, err := m.collect(pattern, ext, compileWildcard(pattern).Match)
	if err != nil {
		return Location{}, err
	}

	c, err := m.single(files, pattern, ext)
	if err != nil {
		return Location{}, err
	}
	return Location{Dir: c.Dir, Name: c.Name}, nil
}

func substringTest(substring string) func(string) bool {
	needle := strings.ToLower(substring)
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), needle)
	}
}

// checkRoot verifies that the root is an existing directory right now.
func (m *Matcher) checkRoot() error {
	info, err := os.Stat(m.root)
	if err != nil {
		return &LookupError{Kind: KindInvalidDirectory, Root: m.root, Err: err}
	}
	if !info.IsDir() {
		return &LookupError{Kind: KindInvalidDirectory, Root: m.root}
	}
	return nil
}

// collect walks the root and keeps the files passing both tests.
func (m *Matcher) collect(query string, ext Extension, nameTest func(string) bool) ([]fileutil.Candidate, error) {
	if err := m.checkRoot(); err != nil {
		return nil, err
	}

	var files []fileutil.Candidate
	result, err := fileutil.ScanFiles(m.root, func(c fileutil.Candidate) {
		if nameTest(c.Name) && ext.Accepts(c.Ext) {
			files = append(files, c)
		}
	})
	if err != nil {
		return nil, &LookupError{Kind: KindInvalidDirectory, Root: m.root, Query: query, Extension: ext, Err: err}
	}

	for _, scanErr := range result.Errors {
		m.warn(fmt.Sprintf("skipped during scan of %s: %v", m.root, scanErr))
	}
	m.debug(fmt.Sprintf("scanned %d files under %s: %d match %q with extension %s",
		result.Visited, m.root, len(files), query, ext))

	return files, nil
}

// single enforces the exactly-one-match contract.
func (m *Matcher) single(files []fileutil.Candidate, query string, ext Extension) (fileutil.Candidate, error) {
	switch len(files) {
	case 0:
		return fileutil.Candidate{}, &LookupError{Kind: KindNotFound, Root: m.root, Query: query, Extension: ext}
	case 1:
		return files[0], nil
	default:
		paths := make([]string, len(files))
		for i, c := range files {
			paths[i] = c.Path
		}
		return fileutil.Candidate{}, &LookupError{
			Kind:      KindAmbiguousMatch,
			Root:      m.root,
			Query:     query,
			Extension: ext,
			Paths:     paths,
		}
	}
}

func (m *Matcher) debug(msg string) {
	if m.logger != nil {
		m.logger.LogDebug(msg)
	}
}

func (m *Matcher) warn(msg string) {
	if m.logger != nil {
		m.logger.LogWarn(msg)
	}
}
