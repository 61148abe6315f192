package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 500*time.Millisecond, cfg.Gravity.Interval.Std())
	assert.Equal(t, []string{"enter"}, cfg.Keys.Restart)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
board:
  height: 16
  width: 8
gravity:
  interval: 250ms
seed: 7
player:
  name: ada
keys:
  rotate: ["w"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Board.Height)
	assert.Equal(t, 8, cfg.Board.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Gravity.Interval.Std())
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "ada", cfg.Player.Name)
	assert.Equal(t, []string{"w"}, cfg.Keys.Rotate)
	assert.Equal(t, []string{"left", "h"}, cfg.Keys.Left)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "gravity:\n  interval: soon\n"))
	assert.ErrorContains(t, err, "invalid duration")

	_, err = Load(writeConfig(t, "board: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Board.Height = 3
	cfg.Board.Width = 9
	cfg.Gravity.Interval = -1

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "board.height 3")
	assert.ErrorContains(t, err, "must be even")
	assert.ErrorContains(t, err, "gravity.interval")
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "blockfall.example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}
