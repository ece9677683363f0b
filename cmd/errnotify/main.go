// Package main provides the errnotify command, a shell-facing front end for
// the error/warning reporting facility. It prints the standard notice block
// for an error or warning, persists error notices to the configured log
// file, and by default terminates with the error flag as its exit status so
// shell pipelines observe the reported flag.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/errnotify/errnotify/internal/config"
	"github.com/errnotify/errnotify/internal/errorstate"
	"github.com/errnotify/errnotify/internal/logging"
	"github.com/errnotify/errnotify/internal/terminal"
)

// Exit status for failures of the tool itself (bad flags, unreadable
// config), as opposed to the reported error flag.
const preRunExitCode = 2

// Error definitions
var (
	ErrMessageRequired = errors.New("a notice message is required (-message)")
)

var (
	configPath   = flag.String("config", "", "path to TOML config file")
	functionName = flag.String("function", "", "name of the function or step being reported")
	message      = flag.String("message", "", "notice message text")
	flagValue    = flag.Int("flag", 1, "numeric flag identifying the condition (exit status for errors)")
	warning      = flag.Bool("warning", false, "report a warning instead of an error")
	logFile      = flag.String("log-file", "", "error log file (overrides config)")
	noExit       = flag.Bool("no-exit", false, "return instead of exiting after reporting an error")
	colorMode    = flag.String("color", "", "color notice headers: auto, always, never (overrides config)")
	logLevel     = flag.String("log-level", "info", "diagnostic log level (debug, info, warn, error)")
	logDir       = flag.String("log-dir", "", "directory for per-run JSON diagnostic logs")
	runIDFlag    = flag.String("run-id", "", "identifier for this invocation (auto-generates a ULID if not provided)")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "errnotify: %v\n", err)
		os.Exit(preRunExitCode)
	}
}

func run() error {
	flag.Parse()

	runID := *runIDFlag
	if runID == "" {
		runID = logging.GenerateRunID()
	}

	if err := logging.Setup(*logLevel, *logDir, runID); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	if *message == "" {
		return ErrMessageRequired
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := buildState(cfg)
	if err != nil {
		return err
	}

	if *warning {
		slog.Debug("reporting warning",
			"function", *functionName,
			"flag", *flagValue,
			"run_id", runID)
		st.ReportWarning(*functionName, *message, *flagValue)
		return nil
	}

	slog.Debug("reporting error",
		"function", *functionName,
		"flag", *flagValue,
		"exit_on_error", st.ExitOnError(),
		"run_id", runID)

	// With exit-on-error enabled this call does not return.
	if err := st.ReportError(*functionName, *message, *flagValue); err != nil {
		return fmt.Errorf("notice printed but log write failed: %w", err)
	}
	return nil
}

// loadConfig returns the configuration from -config, or the defaults when no
// config file was given.
func loadConfig() (*config.Config, error) {
	if *configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildState assembles the reporting facility from the config with flag
// overrides applied. Flags take precedence over config values.
func buildState(cfg *config.Config) (*errorstate.State, error) {
	logFileName := cfg.Notify.LogFile
	if *logFile != "" {
		logFileName = *logFile
	}

	exitOnError := *cfg.Notify.ExitOnError
	if *noExit {
		exitOnError = false
	}

	mode := cfg.ColorMode()
	if *colorMode != "" {
		parsed, err := terminal.ParseMode(*colorMode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}

	return errorstate.New(
		errorstate.WithLogFilename(logFileName),
		errorstate.WithExitOnError(exitOnError),
		errorstate.WithColor(terminal.ShouldColorize(mode)),
	), nil
}
