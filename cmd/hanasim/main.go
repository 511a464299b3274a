// hanasim runs batches of deterministic Hanabi simulations and reports
// score statistics for the selected agent.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/hanasim/internal/config"
	"github.com/lox/hanasim/internal/simulator"
)

type CLI struct {
	Config    string `default:"hanasim.hcl" help:"Path to HCL config file"`
	Games     int    `help:"Number of games to simulate (overrides config)"`
	Players   int    `help:"Number of players, 2-5 (overrides config)"`
	Agent     string `help:"Agent type: cheater, rand, smart (overrides config)"`
	Seed      int64  `help:"RNG seed (0 for time-based)"`
	Workers   int    `help:"Parallel game workers (overrides config)"`
	ReplayDir string `help:"Directory to write per-game replay logs"`
	Verbose   bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("hanasim"),
		kong.Description("Deterministic Hanabi simulator for benchmarking scripted agents"),
		kong.UsageOnError(),
	)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "path", cli.Config, "error", err)
	}

	// Flags override the config file
	if cli.Games > 0 {
		cfg.Simulation.Games = cli.Games
	}
	if cli.Players > 0 {
		cfg.Simulation.Players = cli.Players
	}
	if cli.Agent != "" {
		cfg.Simulation.Agent = cli.Agent
	}
	if cli.Seed != 0 {
		cfg.Simulation.Seed = cli.Seed
	}
	if cli.Workers > 0 {
		cfg.Simulation.Workers = cli.Workers
	}
	if cli.ReplayDir != "" {
		cfg.Replay = &config.ReplayConfig{Dir: cli.ReplayDir}
	}

	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	replayDir := ""
	if cfg.Replay != nil {
		replayDir = cfg.Replay.Dir
	}

	fmt.Printf("Simulating %d games of %d-player Hanabi with the %s agent (seed: %d)\n",
		cfg.Simulation.Games, cfg.Simulation.Players, cfg.Simulation.Agent, cfg.Simulation.Seed)

	sim := simulator.New(simulator.Config{
		Games:               cfg.Simulation.Games,
		Players:             cfg.Simulation.Players,
		Agent:               cfg.Simulation.Agent,
		Seed:                cfg.Simulation.Seed,
		Workers:             cfg.Simulation.Workers,
		HintOnForcedDiscard: cfg.Simulation.HintOnForcedDiscard,
		ReplayDir:           replayDir,
		Logger:              logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		logger.Fatal("simulation failed", "error", err)
	}

	simulator.PrintSummary(stats, cfg.Simulation.Agent)
	fmt.Printf("\nTotal wall time: %s (%.0f games/sec)\n",
		time.Since(start).Round(time.Millisecond),
		float64(stats.Games)/time.Since(start).Seconds())

	kctx.Exit(0)
}
