package deck

import (
	rand "math/rand/v2"

	"github.com/lox/hanasim/internal/randutil"
)

// Size is the number of cards in a full Hanabi deck:
// 5 colours x (3+2+2+2+1) copies.
const Size = 50

// Deck is an ordered sequence of cards consumed through a draw pointer.
// The order is fixed once shuffled; drawing never reorders the remainder,
// so the full deal order stays available for replay export.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// New creates a full 50-card deck shuffled deterministically from seed.
// The deck owns its generator; Reshuffle continues the same stream.
func New(seed int64) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   randutil.New(seed),
	}
	d.fill()
	d.shuffle()
	return d
}

// NewFixed creates a deck with an explicit card order and no shuffling.
// Used by tests and deterministic scenarios; the slice is copied.
func NewFixed(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for colour := Red; colour <= Purple; colour++ {
		for rank := Rank(1); rank <= MaxRank; rank++ {
			for i := 0; i < rank.Copies(); i++ {
				d.cards = append(d.cards, NewCard(colour, rank))
			}
		}
	}
}

// Fisher-Yates over the full slice
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the next card. The second return is false when
// the deck is exhausted, which is a normal state rather than an error.
func (d *Deck) Draw() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// IsEmpty returns true if every card has been drawn
func (d *Deck) IsEmpty() bool {
	return d.next >= len(d.cards)
}

// Cards returns the full deck in deal order, including cards already drawn.
// The replay exporter serialises this.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Reshuffle rewinds the draw pointer and reshuffles using the deck's own
// generator, continuing its stream. A fixed deck (no generator) only rewinds,
// so scripted test decks replay identically.
func (d *Deck) Reshuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	if len(d.cards) != Size {
		d.fill()
	}
	d.shuffle()
}
