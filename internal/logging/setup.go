// Package logging sets up diagnostic logging for the notifier CLI. All
// diagnostics go to stderr or a per-run JSON file; stdout is reserved for
// the notice blocks themselves.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// File permissions for log directories and files
const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600
)

// Setup installs the default slog logger: a text handler on stderr at the
// given level and, when logDir is non-empty, a per-run JSON file handler
// named <hostname>_<timestamp>_<runID>.json inside logDir (created if
// needed). An unparsable level falls back to info with a warning.
func Setup(level, logDir, runID string) error {
	var slogLevel slog.Level
	invalidLogLevel := false
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo
		invalidLogLevel = true
	}

	var handlers []slog.Handler

	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	})
	handlers = append(handlers, textHandler)

	if logDir != "" {
		if err := os.MkdirAll(logDir, logDirPerm); err != nil {
			return fmt.Errorf("cannot create log directory %s: %w", logDir, err)
		}

		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		timestamp := time.Now().UTC().Format("20060102T150405Z")

		logPath := filepath.Join(logDir, fmt.Sprintf("%s_%s_%s.json", hostname, timestamp, runID))
		logF, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		jsonHandler := slog.NewJSONHandler(logF, &slog.HandlerOptions{
			Level: slogLevel,
		})
		enrichedHandler := jsonHandler.WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.String("run_id", runID),
		})
		handlers = append(handlers, enrichedHandler)
	}

	var handler slog.Handler
	if len(handlers) == 1 {
		handler = handlers[0]
	} else {
		handler = NewMultiHandler(handlers...)
	}
	slog.SetDefault(slog.New(handler))

	if invalidLogLevel {
		slog.Warn("Invalid log level provided, defaulting to INFO", "provided", level)
	}

	return nil
}
