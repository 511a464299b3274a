package game

import "github.com/lox/hanasim/internal/deck"

// Read access to game state. Agents in this repo cheat by reading true
// state; they get it through these accessors rather than shared mutable
// fields, so the engine remains the only mutation path.

// NumPlayers returns the number of seats
func (g *Game) NumPlayers() int { return g.players }

// HandSize returns the configured cards per hand
func (g *Game) HandSize() int { return g.handSize }

// Hints returns the current number of hint tokens, 0..MaxHints
func (g *Game) Hints() int { return g.hints }

// Strikes returns the number of illegal plays so far
func (g *Game) Strikes() int { return g.strikes }

// Score returns the number of cards played successfully
func (g *Game) Score() int { return g.fireworks.Score() }

// Turn returns the number of moves resolved so far
func (g *Game) Turn() int { return g.turn }

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() int { return g.turn % g.players }

// BonusTurns returns the remaining final-round turns once the deck is empty
func (g *Game) BonusTurns() int { return g.bonusTurns }

// Phase returns the lifecycle state
func (g *Game) Phase() Phase { return g.phase }

// IsOver reports whether the game has reached a terminal condition
func (g *Game) IsOver() bool { return g.phase == PhaseEnded }

// EndReason explains which terminal condition ended the game
func (g *Game) EndReason() EndReason { return g.endReason }

// Seed returns the seed the deck was shuffled with
func (g *Game) Seed() int64 { return g.opts.Seed }

// HandCards returns a copy of the player's hand in order
func (g *Game) HandCards(player int) []deck.Card {
	return g.hands[player].Cards()
}

// HandLen returns the number of cards the player holds
func (g *Game) HandLen(player int) int {
	return g.hands[player].Len()
}

// HandNotes returns the hint annotations for one card in a player's hand
func (g *Game) HandNotes(player, index int) CardNotes {
	return g.hands[player].Notes(index)
}

// HasCard reports whether the player holds at least one copy of card
func (g *Game) HasCard(player int, card deck.Card) bool {
	return g.hands[player].Contains(card)
}

// Fireworks returns the current firework tops by value
func (g *Game) Fireworks() Fireworks {
	return g.fireworks
}

// Discards returns the discard pile for read access and what-if probing
func (g *Game) Discards() *DiscardPile {
	return g.discards
}

// PlayableCards returns the cards that would currently be legal plays,
// derived from the fireworks rather than stored
func (g *Game) PlayableCards() []deck.Card {
	return g.fireworks.PlayableCards()
}

// MaxScore returns the maximum score still attainable given the discards
func (g *Game) MaxScore() int {
	return g.discards.MaxScore()
}

// Pace is the number of discards that can still be afforded without giving
// up max score: score + cards left + players - max score.
func (g *Game) Pace() int {
	return g.Score() + g.deck.Remaining() + g.players - g.MaxScore()
}

// WasPlayed reports whether card has already been played onto a firework
func (g *Game) WasPlayed(card deck.Card) bool {
	_, ok := g.played[card]
	return ok
}

// IsUseless reports whether card can never contribute to the score again,
// because it was already played or is dead in the discard pile
func (g *Game) IsUseless(card deck.Card) bool {
	return g.WasPlayed(card) || g.discards.IsDead(card)
}

// IsCritical reports whether the last live copy of card is still in play.
// A card already played cannot be lost, so it is no longer critical.
func (g *Game) IsCritical(card deck.Card) bool {
	return g.discards.IsCritical(card) && !g.WasPlayed(card)
}

// DeckRemaining returns the number of undrawn cards
func (g *Game) DeckRemaining() int {
	return g.deck.Remaining()
}

// DeckCards returns the full deck in deal order for replay export
func (g *Game) DeckCards() []deck.Card {
	return g.deck.Cards()
}

// History returns a copy of the resolved moves in order
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}
