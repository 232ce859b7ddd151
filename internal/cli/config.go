package cli

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/katalvlaran/matchmax/matio"
)

// fileConfig is the TOML shape accepted by --config. All fields are
// optional; zero values defer to the built-in defaults.
//
//	algo = "hungarian"
//	delimiter = ";"
//	max_iterations = 500
type fileConfig struct {
	Algo          string `toml:"algo"`
	Delimiter     string `toml:"delimiter"`
	MaxIterations int    `toml:"max_iterations"`
}

// settings are the resolved solve-command inputs after merging defaults,
// the config file and explicit flags.
type settings struct {
	algo          assign.Algorithm
	delimiter     string
	maxIterations int
}

// defaultSettings mirrors the library defaults.
func defaultSettings() settings {
	return settings{
		algo:          assign.AlgoBacktrack,
		delimiter:     matio.DefaultDelimiter,
		maxIterations: assign.DefaultMaxIterations,
	}
}

// loadFileConfig reads and decodes a TOML config file.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return cfg, nil
}

// merge applies the non-zero fields of cfg onto s.
func (s *settings) merge(cfg fileConfig) error {
	if cfg.Algo != "" {
		algo, err := assign.ParseAlgorithm(cfg.Algo)
		if err != nil {
			return err
		}
		s.algo = algo
	}
	if cfg.Delimiter != "" {
		s.delimiter = cfg.Delimiter
	}
	if cfg.MaxIterations != 0 {
		s.maxIterations = cfg.MaxIterations
	}

	return nil
}
