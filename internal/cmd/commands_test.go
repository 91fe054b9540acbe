package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/foldermatch/internal/matcher"
)

// treeFixture creates a small directory tree plus an empty config file and
// returns (root, configPath).
func treeFixture(t *testing.T) (string, string) {
	t.Helper()

	base := t.TempDir()
	resolved, err := filepath.EvalSymlinks(base)
	require.NoError(t, err)

	root := filepath.Join(resolved, "data")
	files := []string{
		"folder1/SM01_alpha.txt",
		"folder1/SM02_beta.csv",
		"folder2/sm03_gamma.txt",
		"folder2/nested/X_S_VAL_CRC",
		"README",
	}
	for _, rel := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(rel), 0644))
	}

	configPath := filepath.Join(resolved, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: error\n"), 0644))

	return root, configPath
}

// runCLI executes the root command with args and returns stdout, stderr and
// the error.
func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", configPath, "--no-color"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "list", "sm0", "--dir", root)
	require.NoError(t, err)

	want := ""
	for _, rel := range []string{"folder1/SM01_alpha.txt", "folder1/SM02_beta.csv", "folder2/sm03_gamma.txt"} {
		p := filepath.Join(root, filepath.FromSlash(rel))
		want += fmt.Sprintf("Path: %s\nFilename: %s\n", p, filepath.Base(p))
	}
	assert.Equal(t, want, stdout)
}

func TestListCommandExtensionFilter(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "list", "SM0", "--dir", root, "--ext", ".csv")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Path: %s\nFilename: SM02_beta.csv\n",
		filepath.Join(root, "folder1", "SM02_beta.csv")), stdout)

	stdout, _, err = runCLI(t, cfg, "list", "e", "--dir", root, "--no-ext")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Filename: README\n")
	assert.NotContains(t, stdout, ".txt")
}

func TestListCommandNoMatchesJSON(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "list", "nothing-like-this", "--dir", root, "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestListCommandJSON(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "list", "gamma", "--dir", root, "-f", "json")
	require.NoError(t, err)

	var got []matcher.Match
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "folder2", "sm03_gamma.txt"), got[0].Path)
	assert.Equal(t, "sm03_gamma.txt", got[0].Name)
}

func TestExtAndNoExtConflict(t *testing.T) {
	root, cfg := treeFixture(t)

	_, _, err := runCLI(t, cfg, "list", "SM", "--dir", root, "--ext", ".txt", "--no-ext")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--no-ext")
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestFindCommand(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "find", "BETA", "--dir", root)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Path: %s\nFilename: SM02_beta.csv\n",
		filepath.Join(root, "folder1", "SM02_beta.csv")), stdout)
}

func TestFindCommandNotFound(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "find", "SM01", "--dir", root, "--ext", ".csv")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.True(t, errors.Is(err, matcher.ErrNotFound))
	assert.Equal(t, "No files found matching 'SM01' with extension '.csv'.", err.Error())
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestFindCommandAmbiguous(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, stderr, err := runCLI(t, cfg, "find", "sm0", "--dir", root, "--ext", ".txt")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.True(t, errors.Is(err, matcher.ErrAmbiguousMatch))
	assert.Equal(t, ExitAmbiguousMatch, ExitCode(err))

	assert.Contains(t, stderr, "2 files match 'sm0' with extension '.txt'")
	assert.Contains(t, stderr, filepath.Join(root, "folder1", "SM01_alpha.txt"))
	assert.Contains(t, stderr, filepath.Join(root, "folder2", "sm03_gamma.txt"))
	assert.NotContains(t, stderr, "\033[", "--no-color output must not contain ANSI codes")
}

func TestLocateCommand(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "locate", "*S*VAL*CRC*", "--dir", root)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Path: %s\nFilename: X_S_VAL_CRC\n",
		filepath.Join(root, "folder2", "nested")), stdout)
}

func TestLocateCommandYAML(t *testing.T) {
	root, cfg := treeFixture(t)

	stdout, _, err := runCLI(t, cfg, "locate", "SM0?_beta.*", "--dir", root, "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("dir: %s\nname: SM02_beta.csv\n", filepath.Join(root, "folder1")), stdout)
}

func TestLocateCommandUnclosedBracket(t *testing.T) {
	root, cfg := treeFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "SM[9.log"), nil, 0644))

	stdout, _, err := runCLI(t, cfg, "locate", "SM[9*", "--dir", root)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Path: %s\nFilename: SM[9.log\n", root), stdout)
}

func TestInvalidDirectory(t *testing.T) {
	root, cfg := treeFixture(t)
	missing := filepath.Join(root, "does-not-exist")

	for _, args := range [][]string{
		{"list", "SM"},
		{"find", "SM"},
		{"locate", "*"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, _, err := runCLI(t, cfg, append(args, "--dir", missing)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, matcher.ErrInvalidDirectory))
			assert.Equal(t, ExitInvalidDirectory, ExitCode(err))
			assert.True(t, strings.HasSuffix(err.Error(), "is not a valid directory."))
		})
	}
}

func TestOutputFlagWritesFile(t *testing.T) {
	root, cfg := treeFixture(t)
	out := filepath.Join(t.TempDir(), "result.txt")

	stdout, _, err := runCLI(t, cfg, "find", "alpha", "--dir", root, "--output", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Path: %s\nFilename: SM01_alpha.txt\n",
		filepath.Join(root, "folder1", "SM01_alpha.txt")), string(data))

	_, err = os.Stat(out + ".lock")
	assert.NoError(t, err, "lock file stays next to the output")
}

func TestConfigExtensionDefault(t *testing.T) {
	root, _ := treeFixture(t)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: error\nextension: .csv\n"), 0644))

	stdout, _, err := runCLI(t, cfg, "find", "SM0", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Filename: SM02_beta.csv")

	// The flag overrides the config file
	stdout, _, err = runCLI(t, cfg, "list", "SM0", "--dir", root, "--ext", ".*")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stdout, "Filename: "))
}

func TestMissingExplicitConfig(t *testing.T) {
	root, _ := treeFixture(t)

	_, _, err := runCLI(t, filepath.Join(root, "no-config.yaml"), "list", "SM", "--dir", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLogDirWritesRunLog(t *testing.T) {
	root, cfg := treeFixture(t)
	logDir := t.TempDir()

	_, stderr, err := runCLI(t, cfg, "list", "SM0", "--dir", root, "--log-dir", logDir, "--log-level", "debug")
	require.NoError(t, err)

	entries, err := filepath.Glob(filepath.Join(logDir, "run-*.log"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(entries[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "list")
	assert.Contains(t, string(data), "matches=3")
	assert.Contains(t, stderr, "logging to "+entries[0])
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitFailure},
		{"not found", &matcher.LookupError{Kind: matcher.KindNotFound}, ExitNotFound},
		{"ambiguous", &matcher.LookupError{Kind: matcher.KindAmbiguousMatch}, ExitAmbiguousMatch},
		{"invalid directory", &matcher.LookupError{Kind: matcher.KindInvalidDirectory}, ExitInvalidDirectory},
		{"wrapped", fmt.Errorf("outer: %w", &matcher.LookupError{Kind: matcher.KindNotFound}), ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
