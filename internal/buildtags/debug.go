//go:build debug

package buildtags

import "fmt"

// DebugEnabled indicates whether debug output is enabled by default
const DebugEnabled = true

// Debug prints a message only when debug mode is enabled
func Debug(format string, args ...any) {
	fmt.Printf(format, args...)
}
