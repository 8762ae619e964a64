// Package config loads the workspace configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the optional workspace config file, looked up under the
// project root.
const FileName = ".aoc.yaml"

// Config holds the workspace settings. All paths are relative to the
// project root.
type Config struct {
	Year      int    `mapstructure:"year"`       // event year, used in puzzle URLs
	PuzzleDir string `mapstructure:"puzzle_dir"` // where day stubs and the registry live
	InputDir  string `mapstructure:"input_dir"`  // where input fixtures live
	DBPath    string `mapstructure:"db_path"`    // run log database file
}

// Load reads the configuration for the given project root. A missing
// config file is not an error; defaults apply. Environment variables
// prefixed AOC_ override both defaults and file values.
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetDefault("year", 2021)
	v.SetDefault("puzzle_dir", "internal/puzzles")
	v.SetDefault("input_dir", "input")
	v.SetDefault("db_path", ".aoc/runs.db")

	v.SetConfigFile(filepath.Join(root, FileName))
	v.SetConfigType("yaml")
	v.SetEnvPrefix("AOC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}
