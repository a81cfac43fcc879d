// Package run executes the program sequence: debug banner, header, mode
// line, and the calculation line.
package run

import (
	"github.com/varcalc/varcalc/internal/calc"
	"github.com/varcalc/varcalc/internal/config"
	"github.com/varcalc/varcalc/internal/console"
)

// Sequence prints the calculation example for cfg to con. The output order
// is fixed: optional mode banner (debug only), the header, the mode line,
// and the calculation line when the calculation step is enabled.
func Sequence(cfg *config.Config, con *console.Console) error {
	op, err := cfg.Op()
	if err != nil {
		return err
	}

	con.DebugPrint("%s\n", op)

	con.Print("Calculation Example\n")
	con.Print("%s\n", op.Banner(cfg.Operand1, cfg.Operand2))

	// With no operation configured there is nothing to calculate,
	// regardless of the calculation setting.
	if !cfg.Calculation || op == calc.OpNone {
		return nil
	}

	con.DebugPrint("%s\n", op)

	result, symbol, err := calc.Calculate(cfg.Operand1, cfg.Operand2, op)
	if err != nil {
		return err
	}
	con.Print("%d %c %d = %d\n", cfg.Operand1, symbol, cfg.Operand2, result)

	return nil
}
