// Package terminal decides whether notice output should be colorized, based
// on an explicit mode, environment conventions (NO_COLOR, CLICOLOR_FORCE,
// TERM), CI detection, and whether stdout is a terminal.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode controls colorization of notice headers.
type Mode string

const (
	// ModeAuto enables color only for an interactive, color-capable terminal.
	ModeAuto Mode = "auto"
	// ModeAlways enables color unconditionally.
	ModeAlways Mode = "always"
	// ModeNever disables color unconditionally.
	ModeNever Mode = "never"
)

// ErrInvalidMode is returned by ParseMode for unrecognized mode strings.
var ErrInvalidMode = errors.New("invalid color mode")

// ParseMode converts a string to a Mode, accepting auto, always, and never.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, always, or never)", ErrInvalidMode, s)
	}
}

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// ShouldColorize reports whether output to stdout should use ANSI colors
// under the given mode.
//
// ModeAlways and ModeNever are absolute. ModeAuto applies, in priority
// order: CLICOLOR_FORCE (truthy forces color on), NO_COLOR (any value, even
// empty, forces color off), then interactive detection — stdout connected to
// a terminal, not a CI environment, and a color-capable TERM.
func ShouldColorize(mode Mode) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && isTruthy(force) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	return IsTerminal() && !IsCIEnvironment() && SupportsColor()
}

// IsTerminal checks if stdout is connected to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsCIEnvironment checks if the current environment is a CI/CD system.
func IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			// The generic CI variable must be truthy; CI=false is not CI.
			if envVar == "CI" {
				return isTruthy(value)
			}
			return true
		}
	}
	return false
}

// SupportsColor returns true if TERM names a terminal with basic color
// support. Unknown terminals default to no color; emitting escape sequences
// to a terminal that cannot render them is worse than missing color.
func SupportsColor() bool {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if termName == "" || termName == "dumb" {
		return false
	}

	for _, colorTerm := range colorTerminals {
		if termName == colorTerm || strings.HasPrefix(termName, colorTerm+"-") {
			return true
		}
	}
	return false
}

// isTruthy checks if an environment variable value should be considered
// "true". Values like "false", "0", and "no" are not.
func isTruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "" && lower != "false" && lower != "0" && lower != "no"
}
