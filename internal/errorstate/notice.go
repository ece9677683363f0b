package errorstate

import (
	"fmt"
	"io"
	"strings"

	"github.com/errnotify/errnotify/internal/color"
)

// noticeKind selects between the error and warning notice layouts.
type noticeKind int

const (
	noticeError noticeKind = iota
	noticeWarning
)

// Notice headers. These are part of the fixed output contract.
const (
	errorHeader   = "***** ERROR *****"
	warningHeader = "***** WARNING *****"
)

// formatNotice renders the notice block:
//
//	(blank)
//	***** ERROR *****
//	Function: <functionName>
//	Error Flag: <flag>
//	Message:
//	<message>
//	(blank)
//
// Warnings use the warning header and omit the flag line. With useColor set,
// only the header line is wrapped in ANSI sequences; the remaining lines are
// always plain.
func formatNotice(kind noticeKind, functionName, message string, flag int, useColor bool) string {
	var sb strings.Builder

	sb.WriteString("\n")
	switch kind {
	case noticeError:
		if useColor {
			sb.WriteString(color.Red(errorHeader))
		} else {
			sb.WriteString(errorHeader)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Function: %s\n", functionName)
		fmt.Fprintf(&sb, "Error Flag: %d\n", flag)
	case noticeWarning:
		if useColor {
			sb.WriteString(color.Yellow(warningHeader))
		} else {
			sb.WriteString(warningHeader)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Function: %s\n", functionName)
	}
	sb.WriteString("Message:\n")
	sb.WriteString(message)
	sb.WriteString("\n\n")

	return sb.String()
}

// writeNotice writes the block in a single call so lines cannot interleave
// with other writers sharing the stream. The write is best-effort: the
// reporting contract does not fail on a console error.
func writeNotice(w io.Writer, kind noticeKind, functionName, message string, flag int, useColor bool) {
	fmt.Fprint(w, formatNotice(kind, functionName, message, flag, useColor))
}
