// Package console provides the program's output surface: plain printing
// plus debug-gated printing over a single writer.
package console

import (
	"fmt"
	"io"
)

// Console writes program output to a writer. Debug controls whether
// DebugPrint outputs anything.
type Console struct {
	w     io.Writer
	Debug bool
}

// New creates a console writing to w.
func New(w io.Writer, debug bool) *Console {
	return &Console{w: w, Debug: debug}
}

// Print outputs to the console. Callers include their own newlines.
func (c *Console) Print(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// DebugPrint outputs to the console only when Debug is true. Use this for
// diagnostic messages that should not appear in regular runs.
func (c *Console) DebugPrint(format string, args ...any) {
	if !c.Debug {
		return
	}
	fmt.Fprintf(c.w, format, args...)
}
