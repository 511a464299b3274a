package agent

import (
	"github.com/charmbracelet/log"
	"github.com/lox/hanasim/internal/deck"
	"github.com/lox/hanasim/internal/game"
)

// SmartCheater applies a priority ladder over full-state reads:
//
//  1. Play the lowest-ranked playable card in hand.
//  2. Burn a hint on the next player when tokens are at the cap, keeping
//     the discard option open for later.
//  3. While the pace allows (or no tokens are left to stall with), discard
//     a useless card: one already played or dead.
//  4. Otherwise stall with a hint.
//  5. Discard a useless card regardless of pace.
//  6. Discard a duplicate held in this hand.
//  7. Discard a card another player also holds.
//  8. Discard the highest-ranked non-critical card.
//  9. Discard whichever card leaves the highest attainable score.
type SmartCheater struct {
	logger *log.Logger
}

// NewSmartCheater creates the pace-aware cheating agent
func NewSmartCheater(logger *log.Logger) *SmartCheater {
	return &SmartCheater{logger: logger}
}

// Name returns the agent name
func (a *SmartCheater) Name() string { return "smart" }

// ChooseMove walks the priority ladder and returns the first applicable move
func (a *SmartCheater) ChooseMove(g *game.Game, player int) game.Action {
	hand := g.HandCards(player)
	fireworks := g.Fireworks()

	// 1. Lowest-ranked playable card first: low ranks unlock more plays
	bestIndex := -1
	for index, card := range hand {
		if !fireworks.IsLegalPlay(card.Colour, card) {
			continue
		}
		if bestIndex < 0 || card.Rank < hand[bestIndex].Rank {
			bestIndex = index
		}
	}
	if bestIndex >= 0 {
		return game.Play{Index: bestIndex, Colour: hand[bestIndex].Colour}
	}

	// 2. At the token cap a discard would be wasted
	if g.Hints() == game.MaxHints {
		return a.stallHint(g, player)
	}

	// 3. Discard a useless card while the pace affords it. The threshold is
	// the number of discards that can happen before max score is at risk:
	// deck size minus one copy of each card minus the cards locked in hands.
	threshold := deck.Size - deck.NumColours*int(deck.MaxRank) - g.NumPlayers()*g.HandSize()
	if g.Discards().Total() < threshold || g.Hints() == 0 {
		if index := first(hand, g.IsUseless); index >= 0 {
			return game.Discard{Index: index}
		}
	}

	// 4. Stall with a hint when tokens remain
	if g.Hints() > 0 {
		return a.stallHint(g, player)
	}

	// 5. Useless card, pace no longer matters
	if index := first(hand, g.IsUseless); index >= 0 {
		return game.Discard{Index: index}
	}

	// 6. A duplicate within this hand is free to lose
	seen := make(map[deck.Card]int, len(hand))
	for index, card := range hand {
		if _, ok := seen[card]; ok {
			return game.Discard{Index: index}
		}
		seen[card] = index
	}

	// 7. A card another player also holds is covered
	for index, card := range hand {
		for p := 0; p < g.NumPlayers(); p++ {
			if p != player && g.HasCard(p, card) {
				return game.Discard{Index: index}
			}
		}
	}

	// 8. Highest-ranked dispensable card: it is furthest from being playable
	dispensable := -1
	for index, card := range hand {
		if g.IsCritical(card) {
			continue
		}
		if dispensable < 0 || card.Rank > hand[dispensable].Rank {
			dispensable = index
		}
	}
	if dispensable >= 0 {
		return game.Discard{Index: dispensable}
	}

	// 9. Every card is critical: probe each hypothetical discard and lose
	// the one that damages the attainable score least
	return game.Discard{Index: a.bestForcedDiscard(g, hand)}
}

func (a *SmartCheater) stallHint(g *game.Game, player int) game.Action {
	next := (player + 1) % g.NumPlayers()
	return game.HintRank{Target: next, Rank: 1}
}

// bestForcedDiscard returns the index whose discard leaves the highest
// maximum attainable score, probed via the pile's what-if helper.
func (a *SmartCheater) bestForcedDiscard(g *game.Game, hand []deck.Card) int {
	pile := g.Discards()
	bestIndex := 0
	bestScore := -1
	for index, card := range hand {
		if score := pile.MaxScoreAfterDiscard(card); score > bestScore {
			bestIndex = index
			bestScore = score
		}
	}
	return bestIndex
}
