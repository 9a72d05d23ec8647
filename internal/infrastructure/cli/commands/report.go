package commands

import (
	"fmt"
	"io"
	"strings"
)

// writeStatusLine prints "[STATUS] name", followed by " - details" when details is set.
// Check listings and doctor diagnostics share this shape.
func writeStatusLine(out io.Writer, status, name, details string) {
	if details == "" {
		fmt.Fprintf(out, "[%s] %s\n", strings.ToUpper(status), name)
		return
	}
	fmt.Fprintf(out, "[%s] %s - %s\n", strings.ToUpper(status), name, details)
}
