package main

import (
	"github.com/varcalc/varcalc/internal/tui"
)

// Run executes the interactive command
func (c *InteractiveCmd) Run() error {
	cfg, err := resolve(c.Config)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}
