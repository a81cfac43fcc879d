package main

import (
	"os"

	"github.com/varcalc/varcalc/internal/buildtags"
	"github.com/varcalc/varcalc/internal/config"
	"github.com/varcalc/varcalc/internal/console"
	"github.com/varcalc/varcalc/internal/run"
)

// Run executes the run command
func (c *RunCmd) Run() error {
	cfg, err := resolve(c.Config)
	if err != nil {
		return err
	}

	c.apply(cfg)

	buildtags.Debug("varcalc: operation=%s calculation=%v operands=(%d, %d)\n",
		cfg.Operation, cfg.Calculation, cfg.Operand1, cfg.Operand2)

	return run.Sequence(cfg, console.New(os.Stdout, cfg.Debug))
}

// apply overrides cfg with the flags set on the command line. Operands are
// pointers so an explicit 0 still overrides the config value.
func (c *RunCmd) apply(cfg *config.Config) {
	if c.Operation != "" {
		cfg.Operation = c.Operation
	}
	if c.Debug {
		cfg.Debug = true
	}
	if c.NoCalc {
		cfg.Calculation = false
	}
	if c.Operand1 != nil {
		cfg.Operand1 = *c.Operand1
	}
	if c.Operand2 != nil {
		cfg.Operand2 = *c.Operand2
	}
}
