// Package agent provides scripted Hanabi players for benchmarking. All of
// them cheat: they read true game state through the engine's query surface
// instead of reasoning about hints, so runs measure pure strategy quality.
package agent

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/hanasim/internal/game"
)

// Names returns the registered agent names
func Names() []string {
	return []string{"cheater", "rand", "smart"}
}

// New creates an agent by name. The rng is owned by the caller's game worker
// so parallel simulations never share a generator.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch name {
	case "cheater":
		return NewCheater(logger), nil
	case "rand":
		return NewRandAgent(rng, logger), nil
	case "smart":
		return NewSmartCheater(logger), nil
	default:
		return nil, fmt.Errorf("unknown agent type %q", name)
	}
}
