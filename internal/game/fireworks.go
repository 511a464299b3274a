package game

import "github.com/lox/hanasim/internal/deck"

// Fireworks tracks the top rank played for each colour. Each stack advances
// by exactly one on a legal play and never regresses.
type Fireworks struct {
	tops [deck.NumColours]deck.Rank
}

// Top returns the current top rank for a colour, 0 if nothing played
func (f *Fireworks) Top(colour deck.Colour) deck.Rank {
	return f.tops[colour]
}

// NextCard returns the single card that would legally extend the colour's
// firework. The second return is false once the firework is complete.
func (f *Fireworks) NextCard(colour deck.Colour) (deck.Card, bool) {
	next := f.tops[colour] + 1
	if next > deck.MaxRank {
		return deck.Card{}, false
	}
	return deck.NewCard(colour, next), true
}

// IsLegalPlay reports whether card can be played onto the given colour's
// firework: the card must be of that colour and be the next rank up.
func (f *Fireworks) IsLegalPlay(colour deck.Colour, card deck.Card) bool {
	return card.Colour == colour && card.Rank == f.tops[colour]+1
}

// Advance increments the colour's firework by one. Only invoked after a
// legal play.
func (f *Fireworks) Advance(colour deck.Colour) {
	f.tops[colour]++
}

// Score returns the total number of cards played across all fireworks
func (f *Fireworks) Score() int {
	score := 0
	for _, top := range f.tops {
		score += int(top)
	}
	return score
}

// Complete reports whether every firework has reached rank 5
func (f *Fireworks) Complete() bool {
	return f.Score() == int(deck.MaxRank)*deck.NumColours
}

// PlayableCards returns the set of cards that would currently be legal
// plays, one per incomplete colour, derived rather than stored.
func (f *Fireworks) PlayableCards() []deck.Card {
	cards := make([]deck.Card, 0, deck.NumColours)
	for colour := deck.Red; colour <= deck.Purple; colour++ {
		if card, ok := f.NextCard(colour); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

func (f *Fireworks) reset() {
	f.tops = [deck.NumColours]deck.Rank{}
}
