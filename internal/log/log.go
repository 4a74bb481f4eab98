// Package log is a thin wrapper around log/slog for debug tracing of external
// process calls. It writes to stderr so it never mixes with command output.
// User-facing messages go through the ui notifier, not this package.
package log

import (
	"io"
	"log/slog"
	"os"
)

var logger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init replaces the package logger. verbose enables debug records.
func Init(w io.Writer, verbose bool) {
	logger = newLogger(w, verbose)
}

// Debug logs a debug record.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs an info record.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs a warning record.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs an error record.
func Error(msg string, args ...any) { logger.Error(msg, args...) }
