// internal/cli/output.go
package cli

import (
	"fmt"
	"io"
)

// Color output helpers
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func printSuccess(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, colorGreen+"✓ "+msg+colorReset+"\n", args...)
}

func printError(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, colorRed+"✗ "+msg+colorReset+"\n", args...)
}

func printInfo(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, colorCyan+"ℹ "+msg+colorReset+"\n", args...)
}

func printWarning(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, colorYellow+"⚠ "+msg+colorReset+"\n", args...)
}
