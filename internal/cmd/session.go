package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/foldermatch/internal/config"
	"github.com/harrison/foldermatch/internal/filelock"
	"github.com/harrison/foldermatch/internal/logger"
	"github.com/harrison/foldermatch/internal/matcher"
)

// session carries everything one lookup command needs: merged config,
// loggers, the matcher and the extension filter.
type session struct {
	cmd        *cobra.Command
	cfg        *config.Config
	log        logger.Logger
	fileLog    *logger.FileLogger
	matcher    *matcher.Matcher
	ext        matcher.Extension
	output     string
	colorOut   bool
	configPath string
}

// newSession resolves configuration and flags for cmd and builds the matcher.
func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	configFlag, _ := flags.GetString("config")
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, configPath, err := config.Resolve(configFlag, cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel, logDir, extension, format, colorMode *string
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevel = &v
	}
	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		logDir = &v
	}
	if flags.Changed("ext") {
		v, _ := flags.GetString("ext")
		extension = &v
	}
	if noExt, _ := flags.GetBool("no-ext"); noExt {
		if extension != nil {
			return nil, fmt.Errorf("cannot use --ext and --no-ext together")
		}
		empty := ""
		extension = &empty
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		format = &v
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		never := config.ColorNever
		colorMode = &never
	}
	cfg.MergeWithFlags(logLevel, logDir, extension, format, colorMode)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &session{
		cmd:        cmd,
		cfg:        cfg,
		ext:        matcher.ParseExtension(cfg.Extension),
		colorOut:   colorEnabled(cfg.Color, cmd.ErrOrStderr()),
		configPath: configPath,
	}
	s.output, _ = flags.GetString("output")

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	console.SetColor(s.colorOut)
	s.log = console

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.fileLog = fileLog
		s.log = logger.NewMultiLogger(console, fileLog)
		s.log.LogDebug(fmt.Sprintf("run %s logging to %s", fileLog.RunID(), fileLog.RunFile()))
	}

	if configPath != "" {
		s.log.LogDebug(fmt.Sprintf("loaded config from %s", configPath))
	}

	dir, _ := flags.GetString("dir")
	m, err := matcher.New(dir, matcher.WithLogger(s.log))
	if err != nil {
		s.Close()
		return nil, err
	}
	s.matcher = m

	return s, nil
}

// colorEnabled decides whether output to w is colored under mode.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return logger.SupportsColor(w)
	}
}

// logLookup records the outcome of a lookup started at start.
func (s *session) logLookup(operation, query string, matches int, start time.Time, err error) {
	s.log.LogLookup(logger.LookupSummary{
		Operation: operation,
		Root:      s.matcher.Root(),
		Query:     query,
		Extension: s.ext.String(),
		Matches:   matches,
		Duration:  time.Since(start),
		Err:       err,
	})
}

// emit renders results through render and sends them to stdout or, with
// --output, to a locked atomic write of the target file.
func (s *session) emit(render func(io.Writer, string) error) error {
	if s.output == "" {
		return render(s.cmd.OutOrStdout(), s.cfg.Format)
	}

	var buf bytes.Buffer
	if err := render(&buf, s.cfg.Format); err != nil {
		return err
	}
	if err := filelock.WriteOutput(s.cmd.Context(), s.output, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	s.log.LogInfo(fmt.Sprintf("wrote results to %s", s.output))
	return nil
}

// Close releases the file logger, if any.
func (s *session) Close() {
	if s.fileLog != nil {
		if err := s.fileLog.Close(); err != nil {
			fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}
}
