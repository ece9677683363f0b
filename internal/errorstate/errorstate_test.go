package errorstate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState creates a State writing to in-memory buffers with the exit
// function replaced by a capture; the returned pointer records the exit code
// of the most recent exit call, or nil if no exit happened.
func newTestState(t *testing.T, opts ...Option) (*State, *bytes.Buffer, *bytes.Buffer, **int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	var exitCode *int

	base := []Option{
		WithStdout(&stdout),
		WithStderr(&stderr),
		WithExitFunc(func(code int) {
			exitCode = &code
		}),
	}
	s := New(append(base, opts...)...)
	return s, &stdout, &stderr, &exitCode
}

func TestNewDefaults(t *testing.T) {
	s := New()

	assert.False(t, s.HasErrorOccurred())
	assert.False(t, s.HasWarningOccurred())
	assert.Equal(t, 0, s.ErrorFlag())
	assert.Equal(t, 0, s.WarningFlag())
	assert.True(t, s.ExitOnError())
	assert.Equal(t, "error_log.txt", s.LogFilename())
}

func TestSetLogFilename(t *testing.T) {
	t.Run("stores the given name", func(t *testing.T) {
		s := New()
		s.SetLogFilename("failures.log")
		assert.Equal(t, "failures.log", s.LogFilename())
	})

	t.Run("overwrites the default", func(t *testing.T) {
		s := New(WithLogFilename("from_option.log"))
		assert.Equal(t, "from_option.log", s.LogFilename())

		s.SetLogFilename("replaced.log")
		assert.Equal(t, "replaced.log", s.LogFilename())
	})

	t.Run("truncates beyond the cap", func(t *testing.T) {
		s := New()
		long := strings.Repeat("x", 300)
		s.SetLogFilename(long)

		got := s.LogFilename()
		assert.Len(t, got, MaxLogFilenameLength)
		assert.Equal(t, long[:MaxLogFilenameLength], got)
	})

	t.Run("truncation counts characters not bytes", func(t *testing.T) {
		s := New()
		long := strings.Repeat("é", 300)
		s.SetLogFilename(long)
		assert.Equal(t, MaxLogFilenameLength, len([]rune(s.LogFilename())))
	})

	t.Run("name at the cap is kept intact", func(t *testing.T) {
		s := New()
		exact := strings.Repeat("y", MaxLogFilenameLength)
		s.SetLogFilename(exact)
		assert.Equal(t, exact, s.LogFilename())
	})
}

func TestReportWarning(t *testing.T) {
	s, stdout, _, exitCode := newTestState(t)
	s.SetLogFilename(filepath.Join(t.TempDir(), "warn_should_not_exist.log"))

	s.ReportWarning("f", "m", 7)

	assert.True(t, s.HasWarningOccurred())
	assert.Equal(t, 7, s.WarningFlag())
	assert.False(t, s.HasErrorOccurred(), "warnings must not touch error state")
	assert.Nil(t, *exitCode, "warnings must never terminate the process")

	_, err := os.Stat(s.LogFilename())
	assert.True(t, os.IsNotExist(err), "warnings must not write the log file")

	want := "\n***** WARNING *****\nFunction: f\nMessage:\nm\n\n"
	assert.Equal(t, want, stdout.String())
}

func TestResetWarningStatus(t *testing.T) {
	s, _, _, _ := newTestState(t)
	s.SetLogFilename(filepath.Join(t.TempDir(), "unused.log"))

	s.ReportWarning("f", "m", 7)
	s.ResetWarningStatus()

	assert.False(t, s.HasWarningOccurred())
	assert.Equal(t, 0, s.WarningFlag())
}

func TestReportErrorNoExit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "err.log")
	s, stdout, _, exitCode := newTestState(t, WithExitOnError(false), WithLogFilename(logPath))

	err := s.ReportError("loadConfig", "file missing", 3)

	require.NoError(t, err)
	assert.Nil(t, *exitCode, "must not exit when exit-on-error is disabled")
	assert.True(t, s.HasErrorOccurred())
	assert.Equal(t, 3, s.ErrorFlag())

	want := "\n***** ERROR *****\nFunction: loadConfig\nError Flag: 3\nMessage:\nfile missing\n\n"
	assert.Equal(t, want, stdout.String())

	content, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Equal(t, want, string(content), "log file must carry the same block as the console notice")
}

func TestReportErrorExit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "err.log")
	s, _, _, exitCode := newTestState(t, WithLogFilename(logPath))

	s.ReportError("f", "m", 42)

	require.NotNil(t, *exitCode, "default exit-on-error must invoke the exit function")
	assert.Equal(t, 42, **exitCode)
	assert.True(t, s.HasErrorOccurred())
	assert.Equal(t, 42, s.ErrorFlag())

	// Log write happens before termination.
	_, err := os.Stat(logPath)
	assert.NoError(t, err)
}

func TestReportErrorOverwritesFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "err.log")
	s, _, _, _ := newTestState(t, WithExitOnError(false), WithLogFilename(logPath))

	require.NoError(t, s.ReportError("f1", "first", 3))
	require.NoError(t, s.ReportError("f2", "second", 9))

	assert.Equal(t, 9, s.ErrorFlag(), "only the most recent flag is retained")
}

func TestResetIndependence(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "err.log")
	s, _, _, _ := newTestState(t, WithExitOnError(false), WithLogFilename(logPath))

	require.NoError(t, s.ReportError("f", "e", 3))
	s.ReportWarning("f", "w", 7)

	t.Run("error reset leaves warning state", func(t *testing.T) {
		s.ResetErrorStatus()
		assert.False(t, s.HasErrorOccurred())
		assert.Equal(t, 0, s.ErrorFlag())
		assert.True(t, s.HasWarningOccurred())
		assert.Equal(t, 7, s.WarningFlag())
	})

	t.Run("warning reset leaves error state", func(t *testing.T) {
		require.NoError(t, s.ReportError("f", "e", 5))
		s.ResetWarningStatus()
		assert.False(t, s.HasWarningOccurred())
		assert.True(t, s.HasErrorOccurred())
		assert.Equal(t, 5, s.ErrorFlag())
	})
}

func TestReportErrorLogFailure(t *testing.T) {
	// A directory path cannot be opened for writing, forcing a log failure.
	badPath := t.TempDir()

	t.Run("returned when exit is disabled", func(t *testing.T) {
		s, stdout, _, _ := newTestState(t, WithExitOnError(false), WithLogFilename(badPath))

		err := s.ReportError("f", "m", 3)

		require.Error(t, err)
		assert.True(t, s.HasErrorOccurred(), "state update precedes the log attempt")
		assert.Equal(t, 3, s.ErrorFlag())
		assert.Contains(t, stdout.String(), "***** ERROR *****", "console notice precedes the log attempt")
	})

	t.Run("does not suppress termination", func(t *testing.T) {
		s, _, stderr, exitCode := newTestState(t, WithLogFilename(badPath))

		s.ReportError("f", "m", 3)

		require.NotNil(t, *exitCode)
		assert.Equal(t, 3, **exitCode)
		assert.Contains(t, stderr.String(), "error log write failed", "log failure is surfaced before exiting")
	})
}

func TestSetExitOnError(t *testing.T) {
	s := New()
	assert.True(t, s.ExitOnError())

	s.SetExitOnError(false)
	assert.False(t, s.ExitOnError())

	s.SetExitOnError(true)
	assert.True(t, s.ExitOnError())
}

func TestEmptyArgumentsAcceptedVerbatim(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "err.log")
	s, stdout, _, _ := newTestState(t, WithExitOnError(false), WithLogFilename(logPath))

	require.NoError(t, s.ReportError("", "", 0))

	want := "\n***** ERROR *****\nFunction: \nError Flag: 0\nMessage:\n\n\n"
	assert.Equal(t, want, stdout.String())
}

func TestColoredHeaders(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "err.log")
	s, stdout, _, _ := newTestState(t, WithExitOnError(false), WithLogFilename(logPath), WithColor(true))

	require.NoError(t, s.ReportError("f", "m", 1))
	s.ReportWarning("f", "m", 1)

	out := stdout.String()
	assert.Contains(t, out, "\033[31m***** ERROR *****\033[0m")
	assert.Contains(t, out, "\033[33m***** WARNING *****\033[0m")

	// Only the header is colored; the rest of the block stays plain.
	assert.Contains(t, out, "\nFunction: f\n")
	assert.Contains(t, out, "\nMessage:\nm\n")
}
