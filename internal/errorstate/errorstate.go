// Package errorstate provides a minimal error and warning reporting facility.
// A State records whether an error or warning has been reported, retains the
// flag value of the most recent report, emits a human-readable notice to
// standard output, persists error notices to a log file, and optionally
// terminates the process when an error is reported.
package errorstate

import (
	"fmt"
	"io"
	"os"
)

const (
	// DefaultLogFilename is the log file used when no other name has been
	// configured.
	DefaultLogFilename = "error_log.txt"

	// MaxLogFilenameLength is the maximum number of characters retained by
	// SetLogFilename. Longer names are silently truncated.
	MaxLogFilenameLength = 256
)

// ExitFunc terminates the process with the given exit code. The default is
// os.Exit; tests inject a capturing function so the error path can be
// exercised in-process.
type ExitFunc func(code int)

// State records error and warning reports and performs the associated
// console, log-file, and process-termination side effects.
//
// A State is not safe for concurrent use. Callers sharing one instance
// across goroutines must add their own synchronization.
type State struct {
	logFilename     string
	errorOccurred   bool
	warningOccurred bool
	errorFlag       int
	warningFlag     int
	exitOnError     bool

	stdout io.Writer
	stderr io.Writer
	exit   ExitFunc
	color  bool
}

// Option configures a State created by New.
type Option func(*State)

// WithStdout sets the writer that receives notice blocks (default os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(s *State) {
		s.stdout = w
	}
}

// WithStderr sets the writer that receives secondary failure diagnostics,
// such as a log write that fails on the exit path (default os.Stderr).
func WithStderr(w io.Writer) Option {
	return func(s *State) {
		s.stderr = w
	}
}

// WithExitFunc sets the function invoked to terminate the process when an
// error is reported with exit-on-error enabled (default os.Exit).
func WithExitFunc(fn ExitFunc) Option {
	return func(s *State) {
		s.exit = fn
	}
}

// WithLogFilename sets the initial log filename, applying the same
// truncation policy as SetLogFilename.
func WithLogFilename(name string) Option {
	return func(s *State) {
		s.SetLogFilename(name)
	}
}

// WithExitOnError sets the initial exit-on-error policy.
func WithExitOnError(enabled bool) Option {
	return func(s *State) {
		s.exitOnError = enabled
	}
}

// WithColor enables ANSI coloring of the notice header lines. Off by
// default; the default output is the plain fixed-format block.
func WithColor(enabled bool) Option {
	return func(s *State) {
		s.color = enabled
	}
}

// New creates a State with the default configuration: no error or warning
// recorded, log filename DefaultLogFilename, exit-on-error enabled, notices
// written to os.Stdout.
func New(opts ...Option) *State {
	s := &State{
		logFilename: DefaultLogFilename,
		exitOnError: true,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogFilename returns the configured log filename.
func (s *State) LogFilename() string {
	return s.logFilename
}

// SetLogFilename stores up to the first MaxLogFilenameLength characters of
// name as the log filename. Characters beyond the cap are dropped without
// error. The name is not validated; an unusable path surfaces as a write
// failure when the log file is next written.
func (s *State) SetLogFilename(name string) {
	runes := []rune(name)
	if len(runes) > MaxLogFilenameLength {
		runes = runes[:MaxLogFilenameLength]
	}
	s.logFilename = string(runes)
}

// ReportError records an error occurrence. It writes the error notice block
// to standard output, sets the error status and flag (overwriting any prior
// flag), writes the same block to the log file, and, if exit-on-error is
// enabled, terminates the process with the flag as exit code.
//
// The log write is attempted regardless of any console failure, and a log
// write failure never suppresses termination; on the exit path the failure
// is reported on stderr first. With exit-on-error disabled, the log write
// error (nil on success) is returned to the caller.
func (s *State) ReportError(functionName, message string, flag int) error {
	writeNotice(s.stdout, noticeError, functionName, message, flag, s.color)

	s.errorOccurred = true
	s.errorFlag = flag

	logErr := s.WriteLogFile(functionName, message, flag)

	if s.exitOnError {
		if logErr != nil {
			fmt.Fprintf(s.stderr, "error log write failed: %v\n", logErr)
		}
		s.exit(flag)
	}
	return logErr
}

// ReportWarning records a warning occurrence. It writes the warning notice
// block to standard output and sets the warning status and flag (overwriting
// any prior flag). Warnings never terminate the process and never touch the
// log file.
func (s *State) ReportWarning(functionName, message string, flag int) {
	writeNotice(s.stdout, noticeWarning, functionName, message, flag, s.color)

	s.warningOccurred = true
	s.warningFlag = flag
}

// HasErrorOccurred reports whether an error has been reported since
// construction or the most recent ResetErrorStatus.
func (s *State) HasErrorOccurred() bool {
	return s.errorOccurred
}

// ResetErrorStatus clears the error status and flag. Warning state is not
// affected.
func (s *State) ResetErrorStatus() {
	s.errorOccurred = false
	s.errorFlag = 0
}

// HasWarningOccurred reports whether a warning has been reported since
// construction or the most recent ResetWarningStatus.
func (s *State) HasWarningOccurred() bool {
	return s.warningOccurred
}

// ResetWarningStatus clears the warning status and flag. Error state is not
// affected.
func (s *State) ResetWarningStatus() {
	s.warningOccurred = false
	s.warningFlag = 0
}

// ErrorFlag returns the flag from the most recent ReportError call, or 0 if
// no error has been reported or the status has been reset.
func (s *State) ErrorFlag() int {
	return s.errorFlag
}

// WarningFlag returns the flag from the most recent ReportWarning call, or 0
// if no warning has been reported or the status has been reset.
func (s *State) WarningFlag() int {
	return s.warningFlag
}

// ExitOnError reports whether a reported error terminates the process.
func (s *State) ExitOnError() bool {
	return s.exitOnError
}

// SetExitOnError sets whether a reported error terminates the process.
func (s *State) SetExitOnError(enabled bool) {
	s.exitOnError = enabled
}
