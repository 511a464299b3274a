package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hanasim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Simulation.Games)
	assert.Equal(t, 5, cfg.Simulation.Players)
	assert.Equal(t, "smart", cfg.Simulation.Agent)
	assert.Nil(t, cfg.Replay)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ParsesFullConfig(t *testing.T) {
	path := writeConfig(t, `
simulation {
  games                  = 500
  players                = 3
  agent                  = "cheater"
  seed                   = 99
  workers                = 2
  hint_on_forced_discard = true
}

replay {
  dir = "replays"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Simulation.Games)
	assert.Equal(t, 3, cfg.Simulation.Players)
	assert.Equal(t, "cheater", cfg.Simulation.Agent)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.True(t, cfg.Simulation.HintOnForcedDiscard)
	require.NotNil(t, cfg.Replay)
	assert.Equal(t, "replays", cfg.Replay.Dir)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {
  games = 50
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Simulation.Games)
	assert.Equal(t, 5, cfg.Simulation.Players)
	assert.Equal(t, "smart", cfg.Simulation.Agent)
	assert.GreaterOrEqual(t, cfg.Simulation.Workers, 1)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `simulation { games = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults pass", mutate: func(c *Config) {}},
		{name: "zero games", mutate: func(c *Config) { c.Simulation.Games = 0 }, wantErr: true},
		{name: "too few players", mutate: func(c *Config) { c.Simulation.Players = 1 }, wantErr: true},
		{name: "too many players", mutate: func(c *Config) { c.Simulation.Players = 6 }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Simulation.Workers = 0 }, wantErr: true},
		{name: "unknown agent", mutate: func(c *Config) { c.Simulation.Agent = "psychic" }, wantErr: true},
		{name: "empty replay dir", mutate: func(c *Config) { c.Replay = &ReplayConfig{} }, wantErr: true},
		{name: "replay dir set", mutate: func(c *Config) { c.Replay = &ReplayConfig{Dir: "out"} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
