package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/varcalc/varcalc/internal/buildtags"
	"github.com/varcalc/varcalc/internal/calc"
)

// Default operands of the example program.
const (
	DefaultOperand1 = 73
	DefaultOperand2 = 37
)

// Config holds the varcalc configuration. It is resolved once before the
// run sequence starts and does not change afterwards.
type Config struct {
	Operation   string `toml:"operation"`
	Debug       bool   `toml:"debug"`
	Calculation bool   `toml:"calculation"`
	Operand1    int    `toml:"operand1"`
	Operand2    int    `toml:"operand2"`
}

// Default returns a config seeded from the build-tag defaults
func Default() *Config {
	return &Config{
		Operation:   buildtags.DefaultOp,
		Debug:       buildtags.DebugEnabled,
		Calculation: buildtags.CalculationEnabled,
		Operand1:    DefaultOperand1,
		Operand2:    DefaultOperand2,
	}
}

// Load loads configuration from a TOML file over the build-tag defaults.
// If path is empty, returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := calc.ParseOp(cfg.Operation); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Op returns the configured operation mode. The operation string is
// validated on load, so flags set afterwards must use valid values.
func (c *Config) Op() (calc.Op, error) {
	return calc.ParseOp(c.Operation)
}
