//go:build !addition && !subtraction

package buildtags

// DefaultOp is the operation compiled into this binary. Without an
// operation tag no mode is configured.
const DefaultOp = "none"
