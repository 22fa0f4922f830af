// Package output writes the plugin status line.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmartinello/check-speedtest/pkg/check"
)

// FormatResult renders r as "<LABEL>[ - <details>][ |<perfdata>]".
func FormatResult(r check.Result) string {
	var b strings.Builder
	b.WriteString(r.Status.String())
	if len(r.Details) > 0 {
		b.WriteString(" - ")
		b.WriteString(strings.Join(r.Details, ", "))
	}
	if len(r.Perfdata) > 0 {
		b.WriteString(" |")
		b.WriteString(strings.Join(r.Perfdata, " "))
	}
	return b.String()
}

// PrintResult writes the status line to stdout for OK and to stderr for any
// other level, and returns the exit code for the result.
func PrintResult(stdout, stderr io.Writer, r check.Result) int {
	w := stderr
	if r.OK() {
		w = stdout
	}
	_, _ = fmt.Fprintln(w, FormatResult(r))
	return r.Status.ExitCode()
}
