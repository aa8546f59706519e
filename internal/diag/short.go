package diag

import (
	"fmt"
	"strings"

	"nixlint/internal/source"
)

// FormatShort renders reports one diagnostic per line:
//
//	W03 2:3 This assignment is better written with `inherit`
//
// Positions are 1-based and resolved against file. The form is stable and
// used by tests and the --format=short debug output.
func FormatShort(reports []Report, file *source.File) string {
	var b strings.Builder
	first := true
	for _, r := range reports {
		for _, d := range r.Diagnostics {
			if !first {
				b.WriteByte('\n')
			}
			first = false
			start, _ := file.Resolve(d.Span)
			fmt.Fprintf(&b, "%s %d:%d %s", r.Code, start.Line, start.Col, OneLine(d.Message))
		}
	}
	return b.String()
}

// OneLine folds a message onto a single line.
func OneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
