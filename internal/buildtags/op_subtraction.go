//go:build subtraction

package buildtags

// DefaultOp is the operation compiled into this binary.
const DefaultOp = "subtraction"
