package agent

import (
	"github.com/charmbracelet/log"
	"github.com/lox/hanasim/internal/deck"
	"github.com/lox/hanasim/internal/game"
)

// Cheater plays the first playable card in its hand and otherwise discards
// its first card. The simplest baseline worth benchmarking against.
type Cheater struct {
	logger *log.Logger
}

// NewCheater creates a new baseline cheating agent
func NewCheater(logger *log.Logger) *Cheater {
	return &Cheater{logger: logger}
}

// Name returns the agent name
func (a *Cheater) Name() string { return "cheater" }

// ChooseMove plays the first playable card, else discards index 0
func (a *Cheater) ChooseMove(g *game.Game, player int) game.Action {
	hand := g.HandCards(player)
	fireworks := g.Fireworks()

	for index, card := range hand {
		if next, ok := fireworks.NextCard(card.Colour); ok && card == next {
			return game.Play{Index: index, Colour: card.Colour}
		}
	}
	return game.Discard{Index: 0}
}

// first returns the index of the first card in hand satisfying pred, or -1
func first(hand []deck.Card, pred func(deck.Card) bool) int {
	for i, card := range hand {
		if pred(card) {
			return i
		}
	}
	return -1
}
