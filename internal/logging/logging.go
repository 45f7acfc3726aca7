package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options configures debug logging and user-facing output.
type Options struct {
	// Verbose enables debug records (--verbose).
	Verbose bool

	// JSON switches debug records to the JSON handler (--json).
	JSON bool

	// Out receives UserInfo and UserSuccess. Nil means stdout.
	Out io.Writer

	// Err receives log records, UserWarning and UserError. Nil means stderr.
	Err io.Writer
}

var logger = newLogger(false, false, os.Stderr)

// Setup configures the logger and the user output streams.
func Setup(opts Options) {
	out, errOut := opts.Out, opts.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	userOut = out
	userErr = errOut
	logger = newLogger(opts.Verbose, opts.JSON, errOut)
}

func newLogger(verbose, jsonOutput bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Debug logs a debug message, shown only with --verbose
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}
