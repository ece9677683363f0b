// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. Functions here return formatted strings; deciding
// whether color should be emitted at all belongs to the caller (see the
// terminal package).
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	redCode    = "\033[31m"
	yellowCode = "\033[33m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Predefined color functions
var (
	// Red colors text in red, used for error notice headers
	Red = NewColor(redCode)

	// Yellow colors text in yellow, used for warning notice headers
	Yellow = NewColor(yellowCode)
)
