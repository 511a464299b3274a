package game

import (
	"fmt"

	"github.com/lox/hanasim/internal/deck"
)

// Action is a move a player can submit on their turn. It is a closed set:
// exactly one of Play, Discard, HintColour or HintRank. Each case carries
// only the payload that action needs, so resolution is an exhaustive switch.
type Action interface {
	isAction()
	String() string
}

// Play attempts to play the card at Index in the acting player's hand onto
// the firework of the given colour. An illegal attempt becomes a strike plus
// a forced discard, which is normal game semantics rather than an error.
type Play struct {
	Index  int
	Colour deck.Colour
}

// Discard voluntarily discards the card at Index, drawing a replacement and
// refunding one hint token (capped).
type Discard struct {
	Index int
}

// HintColour tells Target which of their cards match the given colour.
type HintColour struct {
	Target int
	Colour deck.Colour
}

// HintRank tells Target which of their cards match the given rank.
type HintRank struct {
	Target int
	Rank   deck.Rank
}

func (Play) isAction()       {}
func (Discard) isAction()    {}
func (HintColour) isAction() {}
func (HintRank) isAction()   {}

func (a Play) String() string {
	return fmt.Sprintf("play card %d on %s", a.Index, a.Colour)
}

func (a Discard) String() string {
	return fmt.Sprintf("discard card %d", a.Index)
}

func (a HintColour) String() string {
	return fmt.Sprintf("hint player %d colour %s", a.Target, a.Colour)
}

func (a HintRank) String() string {
	return fmt.Sprintf("hint player %d rank %d", a.Target, a.Rank)
}

// Move is one resolved turn in the game's append-only history
type Move struct {
	Player int
	Action Action
}

// EndReason explains why a game ended
type EndReason int

const (
	// EndReasonNone means the game has not ended
	EndReasonNone EndReason = iota

	// EndReasonStrikeout means three illegal plays ended the game immediately
	EndReasonStrikeout

	// EndReasonPerfectScore means all five fireworks were completed
	EndReasonPerfectScore

	// EndReasonDeckExhausted means the deck emptied and every player took
	// their final bonus turn
	EndReasonDeckExhausted
)

func (r EndReason) String() string {
	switch r {
	case EndReasonNone:
		return "in progress"
	case EndReasonStrikeout:
		return "strikeout"
	case EndReasonPerfectScore:
		return "perfect score"
	case EndReasonDeckExhausted:
		return "deck exhausted"
	default:
		return "unknown"
	}
}
