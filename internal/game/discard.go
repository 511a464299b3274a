package game

import "github.com/lox/hanasim/internal/deck"

// DiscardPile is a multiset of discarded cards. It maintains two derived
// sets incrementally, without rescanning the discard history:
//
//   - critical: cards whose last remaining copy is still live. Losing one
//     to the discard pile makes its colour's firework unfinishable beyond
//     that rank.
//   - dead: cards that can never legally be played again, either because
//     every copy is discarded or because a lower rank of the same colour
//     can never be completed.
//
// A card is in at most one of the two sets; when its last copy is discarded
// it leaves critical and enters dead in the same step.
type DiscardPile struct {
	counts   [deck.NumColours][deck.MaxRank + 1]int
	critical map[deck.Card]struct{}
	dead     map[deck.Card]struct{}
	total    int
}

// NewDiscardPile creates an empty discard pile
func NewDiscardPile() *DiscardPile {
	p := &DiscardPile{
		critical: make(map[deck.Card]struct{}),
		dead:     make(map[deck.Card]struct{}),
	}
	p.seedCritical()
	return p
}

// Rank-5 cards have a single copy, so they are critical before anything is
// discarded at all.
func (p *DiscardPile) seedCritical() {
	for colour := deck.Red; colour <= deck.Purple; colour++ {
		p.critical[deck.NewCard(colour, deck.MaxRank)] = struct{}{}
	}
}

// Reset empties the pile without reallocating
func (p *DiscardPile) Reset() {
	p.counts = [deck.NumColours][deck.MaxRank + 1]int{}
	p.total = 0
	clear(p.critical)
	clear(p.dead)
	p.seedCritical()
}

// Count returns how many copies of card have been discarded
func (p *DiscardPile) Count(card deck.Card) int {
	return p.counts[card.Colour][card.Rank]
}

// Remaining returns how many copies of card are still live anywhere:
// in the deck, in hands, or played.
func (p *DiscardPile) Remaining(card deck.Card) int {
	return card.Rank.Copies() - p.Count(card)
}

// Total returns the total number of discarded cards
func (p *DiscardPile) Total() int {
	return p.total
}

// Discard adds one copy of card to the pile and updates the critical and
// dead sets locally, in O(1) for the affected colour.
func (p *DiscardPile) Discard(card deck.Card) {
	p.counts[card.Colour][card.Rank]++
	p.total++

	switch p.Remaining(card) {
	case 1:
		if _, isDead := p.dead[card]; !isDead {
			p.critical[card] = struct{}{}
		}
	case 0:
		// Every rank at or above this one in the colour is now unplayable
		for rank := card.Rank; rank <= deck.MaxRank; rank++ {
			c := deck.NewCard(card.Colour, rank)
			delete(p.critical, c)
			p.dead[c] = struct{}{}
		}
	}
}

// Remove takes one copy of card back off the pile. It exists for agents
// probing hypothetical discards and has no independent safety net: it does
// not rewind the critical or dead sets, so callers must restore any state
// they perturbed. MaxScoreAfterDiscard is the safe way to probe.
func (p *DiscardPile) Remove(card deck.Card) {
	p.counts[card.Colour][card.Rank]--
	p.total--
}

// MaxScore returns the maximum score still attainable given the discards so
// far. For each colour it counts consecutive ranks from 1 that still have a
// live copy, stopping at the first rank with none, since fireworks are
// played in ascending order. Recomputed on demand; it is queried far less
// often than Discard is called.
func (p *DiscardPile) MaxScore() int {
	maxScore := 0
	for colour := deck.Red; colour <= deck.Purple; colour++ {
		for rank := deck.Rank(1); rank <= deck.MaxRank; rank++ {
			if p.counts[colour][rank] >= rank.Copies() {
				break
			}
			maxScore++
		}
	}
	return maxScore
}

// MaxScoreAfterDiscard returns what MaxScore would be if one more copy of
// card were discarded, leaving the pile unchanged.
func (p *DiscardPile) MaxScoreAfterDiscard(card deck.Card) int {
	p.counts[card.Colour][card.Rank]++
	score := p.MaxScore()
	p.counts[card.Colour][card.Rank]--
	return score
}

// IsCritical reports whether exactly one copy of card remains live
func (p *DiscardPile) IsCritical(card deck.Card) bool {
	_, ok := p.critical[card]
	return ok
}

// IsDead reports whether card can never legally be played again
func (p *DiscardPile) IsDead(card deck.Card) bool {
	_, ok := p.dead[card]
	return ok
}

// CriticalCards returns the critical set in colour-then-rank order
func (p *DiscardPile) CriticalCards() []deck.Card {
	return p.collect(p.critical)
}

// DeadCards returns the dead set in colour-then-rank order
func (p *DiscardPile) DeadCards() []deck.Card {
	return p.collect(p.dead)
}

func (p *DiscardPile) collect(set map[deck.Card]struct{}) []deck.Card {
	cards := make([]deck.Card, 0, len(set))
	for colour := deck.Red; colour <= deck.Purple; colour++ {
		for rank := deck.Rank(1); rank <= deck.MaxRank; rank++ {
			card := deck.NewCard(colour, rank)
			if _, ok := set[card]; ok {
				cards = append(cards, card)
			}
		}
	}
	return cards
}
