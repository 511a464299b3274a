// Package simulator runs batches of independent Hanabi games and aggregates
// their scores. Each game owns its own state and RNG, so games parallelise
// across workers with no shared mutable state.
package simulator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hanasim/internal/agent"
	"github.com/lox/hanasim/internal/game"
	"github.com/lox/hanasim/internal/randutil"
	"github.com/lox/hanasim/internal/replay"
	"github.com/lox/hanasim/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players int
	Agent   string
	Seed    int64
	Workers int

	// HintOnForcedDiscard toggles the engine policy of refunding a hint
	// token on the discard forced by a failed play
	HintOnForcedDiscard bool

	// ReplayDir, when set, receives one replay document per game
	ReplayDir string

	Logger *log.Logger
	Clock  quartz.Clock
}

// Simulator runs Hanabi game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stderr)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays the configured number of games and returns aggregate statistics.
// Game i always receives the seed derived from (base seed, i) regardless of
// worker count, so results are reproducible across parallelism settings.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("game count must be positive, got %d", s.config.Games)
	}

	if s.config.ReplayDir != "" {
		if err := os.MkdirAll(s.config.ReplayDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create replay directory: %w", err)
		}
	}

	workers := s.config.Workers
	if workers > s.config.Games {
		workers = s.config.Games
	}

	perWorker := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		stats := &statistics.Statistics{}
		perWorker[w] = stats
		offset := w

		g.Go(func() error {
			worker, err := s.newWorker(offset)
			if err != nil {
				return err
			}
			for i := offset; i < s.config.Games; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := worker.playGame(i)
				if err != nil {
					return fmt.Errorf("game %d failed: %w", i, err)
				}
				stats.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range perWorker {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return total, nil
}

// worker owns one agent and plays a disjoint subset of the batch
type worker struct {
	config Config
	agent  game.Agent
	clock  quartz.Clock
	logger *log.Logger
}

func (s *Simulator) newWorker(offset int) (*worker, error) {
	// The agent RNG stream is per worker; game determinism comes from the
	// per-game deck seed, not from the agent
	rng := randutil.New(randutil.Derive(s.config.Seed, -1-offset))
	a, err := agent.New(s.config.Agent, rng, s.config.Logger)
	if err != nil {
		return nil, err
	}
	return &worker{
		config: s.config,
		agent:  a,
		clock:  s.config.Clock,
		logger: s.config.Logger,
	}, nil
}

// playGame runs a single game to one of its terminal conditions
func (w *worker) playGame(index int) (statistics.GameResult, error) {
	seed := randutil.Derive(w.config.Seed, index)

	g, err := game.New(game.Options{
		Players:             w.config.Players,
		Seed:                seed,
		HintOnForcedDiscard: w.config.HintOnForcedDiscard,
		Logger:              w.logger,
	})
	if err != nil {
		return statistics.GameResult{}, err
	}
	g.Setup()

	start := w.clock.Now()
	for !g.IsOver() {
		player := g.CurrentPlayer()
		action := w.agent.ChooseMove(g, player)
		if err := g.ResolveMove(player, action); err != nil {
			return statistics.GameResult{}, fmt.Errorf("agent %s submitted a bad move: %w", w.agent.Name(), err)
		}
	}
	elapsed := w.clock.Since(start)

	if w.config.ReplayDir != "" {
		doc := replay.Export(g, nil)
		path := filepath.Join(w.config.ReplayDir, fmt.Sprintf("game_%06d.json", index))
		if err := replay.WriteFile(path, doc); err != nil {
			w.logger.Error("failed to write replay", "game", index, "error", err)
		}
	}

	return statistics.GameResult{
		Score:     g.Score(),
		Turns:     g.Turn(),
		Seed:      seed,
		Elapsed:   elapsed,
		EndReason: g.EndReason(),
	}, nil
}
