// File: config.go
// Role: optional TOML configuration for solver defaults.
//
// A treedec.toml next to the invocation (or named via --config) sets the
// defaults flags start from:
//
//	[solver]
//	strategy     = "min-fill"   # greedy strategy: min-degree | min-fill
//	max-exact    = 20           # largest vertex count solved exactly
package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/treedec/elim"
)

// defaultConfigFile is probed when --config is not given.
const defaultConfigFile = "treedec.toml"

// Config holds file-configurable solver defaults.
type Config struct {
	Solver SolverConfig `toml:"solver"`
}

// SolverConfig selects the greedy strategy and the exact-solver cutoff.
type SolverConfig struct {
	// Strategy names the greedy strategy: "min-degree" or "min-fill".
	Strategy string `toml:"strategy"`

	// MaxExact is the largest vertex count still solved exactly; larger
	// graphs fall back to the greedy solver.
	MaxExact int `toml:"max-exact"`
}

// defaultConfig returns the built-in defaults used without any file.
func defaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Strategy: elim.MinDegree.String(),
			MaxExact: 20,
		},
	}
}

// loadConfig reads the TOML config at path, or probes ./treedec.toml when
// path is empty. A missing default file is not an error; a missing
// explicit file is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("cli: config %s: %w", path, err)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: config %s: %w", path, err)
	}
	if _, err := elim.ParseStrategy(cfg.Solver.Strategy); err != nil {
		return cfg, fmt.Errorf("cli: config %s: %w", path, err)
	}
	if cfg.Solver.MaxExact < 0 {
		return cfg, fmt.Errorf("cli: config %s: max-exact must be ≥ 0", path)
	}
	return cfg, nil
}
