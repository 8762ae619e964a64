package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2021, cfg.Year)
	assert.Equal(t, "internal/puzzles", cfg.PuzzleDir)
	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, ".aoc/runs.db", cfg.DBPath)
}

func TestLoadFromFile(t *testing.T) {
	root := t.TempDir()
	content := "year: 2015\npuzzle_dir: solutions\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, 2015, cfg.Year)
	assert.Equal(t, "solutions", cfg.PuzzleDir)
	// Unset keys keep their defaults.
	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, ".aoc/runs.db", cfg.DBPath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("AOC_YEAR", "2019")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2019, cfg.Year)
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("year: [oops\n"), 0644))

	_, err := Load(root)
	require.Error(t, err)
}
