package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Candidate is a regular file discovered during a scan
type Candidate struct {
	// Path is the full path of the file (root joined with its relative path)
	Path string
	// Name is the basename of the file
	Name string
	// Ext is the final suffix of the basename, see Suffix
	Ext string
	// Dir is the parent directory of the file
	Dir string
}

// ScanResult contains the bookkeeping of a completed scan
type ScanResult struct {
	// Visited is the number of candidates handed to the visit function
	Visited int
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// Suffix returns the final extension of a basename including the leading dot.
// A name whose only dot is the first character (".bashrc") or whose last
// character is a dot ("notes.") has no suffix.
func Suffix(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// ScanFiles walks root recursively and calls visit for every regular file, in
// lexical traversal order. Symlinks are reported when their target is a
// regular file; symlinked directories are not descended.
//
// Directories that cannot be listed, root included, are skipped and recorded
// in ScanResult.Errors. Root must exist and be a directory.
func ScanFiles(root string, visit func(Candidate)) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	result := &ScanResult{
		Errors: make([]error, 0),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil && path == root {
				return err
			}
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		if !isRegularFile(path, d) {
			return nil
		}

		name := d.Name()
		visit(Candidate{
			Path: path,
			Name: name,
			Ext:  Suffix(name),
			Dir:  filepath.Dir(path),
		})
		result.Visited++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}

// isRegularFile reports whether the entry is a regular file, following a
// symlink one hop. Dangling links are not files.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}
