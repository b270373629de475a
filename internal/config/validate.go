package config

import (
	"errors"
	"fmt"
)

var knownCombinations = map[string]struct{}{
	"src":       {},
	"trans":     {},
	"src_trans": {},
	"trans_src": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	for _, combo := range c.Output.Combinations {
		if _, ok := knownCombinations[combo]; !ok {
			return fmt.Errorf("output.combinations: unknown combination %q (want src, trans, src_trans, or trans_src)", combo)
		}
	}
	if c.RunLog.Enabled && c.RunLog.Path == "" {
		return errors.New("run_log.path must be set when run_log.enabled is true")
	}
	return nil
}
