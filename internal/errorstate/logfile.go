package errorstate

import (
	"fmt"
	"os"
)

// logFilePerm is the permission mode for newly created log files.
const logFilePerm os.FileMode = 0o600

// WriteLogFile writes the error notice block for the given arguments to the
// configured log file, replacing any existing content. The file is opened,
// written, and closed within this call; no handle is held across calls.
//
// WriteLogFile never mutates the recorded error or warning state — it is a
// pure side-effecting write and may be called standalone. Open, write, and
// close failures are wrapped and returned; path legality is not checked
// beyond what the filesystem enforces here.
func (s *State) WriteLogFile(functionName, message string, flag int) error {
	f, err := os.OpenFile(s.logFilename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", s.logFilename, err)
	}

	// The log file always carries the plain block, independent of console
	// color settings.
	if _, err := f.WriteString(formatNotice(noticeError, functionName, message, flag, false)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write log file %s: %w", s.logFilename, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file %s: %w", s.logFilename, err)
	}
	return nil
}
