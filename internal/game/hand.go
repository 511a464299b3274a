package game

import "github.com/lox/hanasim/internal/deck"

// CardNotes records what a player has been told about one card in their hand.
// Hints confirm the hinted attribute card-by-card; they never reveal the
// whole hand.
type CardNotes struct {
	ColourHinted bool
	RankHinted   bool
}

// Hand is an ordered sequence of cards held by one player. Order matters
// because actions address cards by position; removal preserves the relative
// order of the remaining cards.
type Hand struct {
	cards []deck.Card
	notes []CardNotes
}

// Draw appends a drawn card to the end of the hand
func (h *Hand) Draw(card deck.Card) {
	h.cards = append(h.cards, card)
	h.notes = append(h.notes, CardNotes{})
}

// Remove removes and returns the card at index i, shifting later cards down.
// Bounds are the caller's responsibility to have validated.
func (h *Hand) Remove(i int) deck.Card {
	card := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	h.notes = append(h.notes[:i], h.notes[i+1:]...)
	return card
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Card returns the card at index i
func (h *Hand) Card(i int) deck.Card {
	return h.cards[i]
}

// Cards returns a copy of the hand in order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Notes returns the hint annotations for the card at index i
func (h *Hand) Notes(i int) CardNotes {
	return h.notes[i]
}

// IndexOf returns the index of the first card equal to card, or -1
func (h *Hand) IndexOf(card deck.Card) int {
	for i, c := range h.cards {
		if c == card {
			return i
		}
	}
	return -1
}

// Contains reports whether the hand holds at least one copy of card
func (h *Hand) Contains(card deck.Card) bool {
	return h.IndexOf(card) >= 0
}

// ApplyColourHint marks every card matching the colour and returns the
// number of matches
func (h *Hand) ApplyColourHint(colour deck.Colour) int {
	matches := 0
	for i, c := range h.cards {
		if c.Colour == colour {
			h.notes[i].ColourHinted = true
			matches++
		}
	}
	return matches
}

// ApplyRankHint marks every card matching the rank and returns the number
// of matches
func (h *Hand) ApplyRankHint(rank deck.Rank) int {
	matches := 0
	for i, c := range h.cards {
		if c.Rank == rank {
			h.notes[i].RankHinted = true
			matches++
		}
	}
	return matches
}

// reset empties the hand, keeping capacity for the next deal
func (h *Hand) reset() {
	h.cards = h.cards[:0]
	h.notes = h.notes[:0]
}
