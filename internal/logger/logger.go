// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation

var defaultLogger *slog.Logger

// Options controls where and at which level the logger writes.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// File enables logging to FilePath (or the XDG state dir default).
	File bool
	// FilePath overrides the default log file location.
	FilePath string
	// Stderr enables logging to stderr. Stdout is never used; it carries the tree.
	Stderr bool
	// StderrWriter replaces os.Stderr when set.
	StderrWriter io.Writer
}

// DefaultLogFilePath determines the path for the application log file based on XDG spec.
func DefaultLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "funtree", "app.log"), nil
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// openLogFile creates the log directory (0750) and opens the file for appending (0640).
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("error creating log directory %s: %w", filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %s: %w", path, err)
	}
	return file, nil
}

// newHandlerWriter builds the combined writer for opts. File failures are
// reported on stderr and file logging is skipped.
func newHandlerWriter(opts Options) io.Writer {
	var writers []io.Writer

	if opts.File {
		path := opts.FilePath
		if path == "" {
			var err error
			path, err = DefaultLogFilePath()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
			}
		}
		if path != "" {
			file, err := openLogFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v. File logging disabled.\n", err)
			} else {
				// The OS closes the handle on exit.
				writers = append(writers, file)
			}
		}
	}

	if opts.Stderr {
		if opts.StderrWriter != nil {
			writers = append(writers, opts.StderrWriter)
		} else {
			writers = append(writers, os.Stderr)
		}
	}

	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

// Init configures the default logger. It should be called once at startup;
// an unknown level falls back to info and is reported on stderr.
func Init(opts Options) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info.\n", err)
	}

	handler := slog.NewJSONHandler(newHandlerWriter(opts), &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)
}

// SetLogger allows replacing the default logger instance, mainly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
