// Package calc implements the calculation dispatch: an operation mode
// selected once per run and a pure arithmetic function over two integers.
package calc

import "fmt"

// Op is the operation mode. Exactly one mode is active per run; it is
// resolved before the program sequence starts and never changes.
type Op int

const (
	// OpNone means no operation was configured; nothing is calculated.
	OpNone Op = iota
	// OpAddition adds the second operand to the first.
	OpAddition
	// OpSubtraction subtracts the second operand from the first.
	OpSubtraction
)

// ParseOp maps a configuration string to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "addition":
		return OpAddition, nil
	case "subtraction":
		return OpSubtraction, nil
	case "none", "":
		return OpNone, nil
	default:
		return OpNone, fmt.Errorf("unknown operation %q", s)
	}
}

// String returns the display name of the mode. The historical output of
// this example spells subtraction "Substraction"; user-visible text keeps
// those bytes.
func (op Op) String() string {
	switch op {
	case OpAddition:
		return "Addition"
	case OpSubtraction:
		return "Substraction"
	default:
		return "None"
	}
}

// Banner returns the human-readable line describing what the run will do
// with operands a and b.
func (op Op) Banner(a, b int) string {
	switch op {
	case OpAddition:
		return fmt.Sprintf("Adding %d to %d", b, a)
	case OpSubtraction:
		return fmt.Sprintf("Substracting %d from %d", b, a)
	default:
		return "No operation specified; nothing to calculate"
	}
}

// Calculate applies op to a and b and returns the result together with the
// operator symbol. Callers must branch on OpNone before calling; invoking
// Calculate without a configured operation is a contract violation.
func Calculate(a, b int, op Op) (int, rune, error) {
	switch op {
	case OpAddition:
		return a + b, '+', nil
	case OpSubtraction:
		return a - b, '-', nil
	default:
		return 0, 0, fmt.Errorf("no operation configured")
	}
}
