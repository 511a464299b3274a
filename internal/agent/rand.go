package agent

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/hanasim/internal/deck"
	"github.com/lox/hanasim/internal/game"
)

// RandAgent picks a uniformly random well-formed action each turn: play a
// random card on its own colour, discard a random card, or hint a random
// other player when a token is available. Plays can still misfire into
// strikes, which is the point of a chaos baseline.
type RandAgent struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandAgent creates an agent that picks random well-formed actions
func NewRandAgent(rng *rand.Rand, logger *log.Logger) *RandAgent {
	return &RandAgent{rng: rng, logger: logger}
}

// Name returns the agent name
func (a *RandAgent) Name() string { return "rand" }

// ChooseMove returns a random well-formed action for the player
func (a *RandAgent) ChooseMove(g *game.Game, player int) game.Action {
	kinds := 2
	if g.Hints() > 0 {
		kinds = 3
	}
	index := a.rng.IntN(g.HandLen(player))

	switch a.rng.IntN(kinds) {
	case 0:
		card := g.HandCards(player)[index]
		return game.Play{Index: index, Colour: card.Colour}
	case 1:
		return game.Discard{Index: index}
	default:
		target := a.rng.IntN(g.NumPlayers() - 1)
		if target >= player {
			target++
		}
		if a.rng.IntN(2) == 0 {
			return game.HintColour{Target: target, Colour: deck.Colour(a.rng.IntN(deck.NumColours))}
		}
		return game.HintRank{Target: target, Rank: deck.Rank(1 + a.rng.IntN(int(deck.MaxRank)))}
	}
}
