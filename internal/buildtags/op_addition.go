//go:build addition

package buildtags

// DefaultOp is the operation compiled into this binary. Building with
// both the addition and subtraction tags is a compile error: DefaultOp
// would be declared twice.
const DefaultOp = "addition"
