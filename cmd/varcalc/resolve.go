package main

import (
	"github.com/varcalc/varcalc/internal/buildtags"
	"github.com/varcalc/varcalc/internal/config"
)

// resolve loads the config file if specified, otherwise the build-time
// defaults.
func resolve(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	buildtags.Debug("varcalc: loaded config (file=%q)\n", path)
	return cfg, nil
}
