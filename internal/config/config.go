// Package config loads the HCL configuration file for simulation runs.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hanasim/internal/agent"
	"github.com/lox/hanasim/internal/game"
)

// Config is the full simulation configuration
type Config struct {
	Simulation SimulationConfig `hcl:"simulation,block"`
	Replay     *ReplayConfig    `hcl:"replay,block"`
}

// SimulationConfig controls the batch run
type SimulationConfig struct {
	Games               int    `hcl:"games,optional"`
	Players             int    `hcl:"players,optional"`
	Agent               string `hcl:"agent,optional"`
	Seed                int64  `hcl:"seed,optional"`
	Workers             int    `hcl:"workers,optional"`
	HintOnForcedDiscard bool   `hcl:"hint_on_forced_discard,optional"`
}

// ReplayConfig enables replay export
type ReplayConfig struct {
	Dir string `hcl:"dir"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Games:   1000,
			Players: 5,
			Agent:   "smart",
			Seed:    0,
			Workers: runtime.NumCPU(),
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.Simulation.Games == 0 {
		cfg.Simulation.Games = def.Simulation.Games
	}
	if cfg.Simulation.Players == 0 {
		cfg.Simulation.Players = def.Simulation.Players
	}
	if cfg.Simulation.Agent == "" {
		cfg.Simulation.Agent = def.Simulation.Agent
	}
	if cfg.Simulation.Workers == 0 {
		cfg.Simulation.Workers = def.Simulation.Workers
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Players < game.MinPlayers || c.Simulation.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, c.Simulation.Players)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Simulation.Workers)
	}

	valid := false
	for _, name := range agent.Names() {
		if c.Simulation.Agent == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown agent %q, valid agents: %v", c.Simulation.Agent, agent.Names())
	}

	if c.Replay != nil && c.Replay.Dir == "" {
		return fmt.Errorf("replay dir must not be empty")
	}
	return nil
}
