// Package config loads the notifier CLI configuration from TOML files,
// applies defaults for absent fields, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/errnotify/errnotify/internal/errorstate"
	"github.com/errnotify/errnotify/internal/terminal"
)

// Configuration loading errors
var (
	// ErrEmptyConfigPath is returned when Load is called with an empty path
	ErrEmptyConfigPath = errors.New("config file path is empty")
)

// Config is the root of the TOML configuration file.
type Config struct {
	Notify NotifySpec `toml:"notify"`
}

// NotifySpec configures the reporting facility behind the CLI.
type NotifySpec struct {
	// LogFile is the error log destination (default "error_log.txt").
	LogFile string `toml:"log_file"`

	// ExitOnError controls whether a reported error terminates the
	// process. A pointer distinguishes "absent" from an explicit false;
	// absent means the facility default (true).
	ExitOnError *bool `toml:"exit_on_error"`

	// Color selects header coloring: auto, always, or never.
	Color string `toml:"color"`
}

// Default values for configuration fields
const (
	DefaultColorMode = string(terminal.ModeAuto)
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	exitOnError := true
	return &Config{
		Notify: NotifySpec{
			LogFile:     errorstate.DefaultLogFilename,
			ExitOnError: &exitOnError,
			Color:       DefaultColorMode,
		},
	}
}

// Load reads, parses, and validates the configuration file at path. Absent
// fields take their defaults; a missing or unreadable file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills absent fields with their default values.
func applyDefaults(cfg *Config) {
	if cfg.Notify.LogFile == "" {
		cfg.Notify.LogFile = errorstate.DefaultLogFilename
	}
	if cfg.Notify.ExitOnError == nil {
		exitOnError := true
		cfg.Notify.ExitOnError = &exitOnError
	}
	if cfg.Notify.Color == "" {
		cfg.Notify.Color = DefaultColorMode
	}
}

// validate checks field values after defaults have been applied.
func validate(cfg *Config) error {
	if _, err := terminal.ParseMode(cfg.Notify.Color); err != nil {
		return fmt.Errorf("notify.color: %w", err)
	}
	return nil
}

// ColorMode returns the validated color mode.
func (c *Config) ColorMode() terminal.Mode {
	mode, err := terminal.ParseMode(c.Notify.Color)
	if err != nil {
		// validate ran at load time; an unparsable mode here means the
		// Config was built by hand, so fall back to the default.
		return terminal.ModeAuto
	}
	return mode
}
