// Package fileutil provides the directory traversal used by foldermatch.
//
// ScanFiles walks a directory tree and hands every regular file to a visit
// function as a Candidate, carrying the derived attributes the matcher filters
// on (basename, suffix, parent directory). Candidates are produced one at a
// time and are not retained by the scanner.
//
// # Traversal Rules
//
//   - Recursive, in lexical order as produced by filepath.WalkDir
//   - Hidden directories are descended like any other directory
//   - Only regular files are visited; a symlink counts when its target is a
//     regular file, symlinked directories are never followed
//   - Directories that cannot be listed, the root included, are skipped and
//     collected in ScanResult.Errors
//   - A root that does not exist or is not a directory is returned as an error
//
// # Suffix Semantics
//
// Suffix returns the final extension of a basename including its dot:
//
//	Suffix("report.txt")     // ".txt"
//	Suffix("archive.tar.gz") // ".gz"
//	Suffix("Makefile")       // ""
//	Suffix(".bashrc")        // ""
//	Suffix("notes.")         // ""
//
// # Usage
//
//	result, err := fileutil.ScanFiles("/path/to/dir", func(c fileutil.Candidate) {
//	    fmt.Println(c.Dir, c.Name, c.Ext)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, err := range result.Errors {
//	    log.Printf("skipped: %v", err)
//	}
package fileutil
