package deck

import "fmt"

// Colour represents a firework colour
type Colour int

const (
	Red Colour = iota
	Green
	Blue
	Yellow
	Purple
)

// NumColours is the number of firework colours in the standard game
const NumColours = 5

// String returns the single-letter representation of a colour
func (c Colour) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Purple:
		return "P"
	default:
		return "?"
	}
}

// Valid reports whether the colour is one of the five standard colours
func (c Colour) Valid() bool {
	return c >= Red && c <= Purple
}

// Rank represents a card rank (1-5)
type Rank int

// MaxRank is the highest rank; playing it completes a firework
const MaxRank Rank = 5

// Valid reports whether the rank is in the playable range 1..5
func (r Rank) Valid() bool {
	return r >= 1 && r <= MaxRank
}

// Copies returns how many copies of this rank exist per colour in a fresh deck
func (r Rank) Copies() int {
	switch r {
	case 1:
		return 3
	case 2, 3, 4:
		return 2
	case 5:
		return 1
	default:
		return 0
	}
}

// Card represents a Hanabi card. Cards are immutable values; two cards are
// equal iff their colour and rank match, so Card is usable as a map key.
type Card struct {
	Colour Colour
	Rank   Rank
}

// NewCard creates a new card
func NewCard(colour Colour, rank Rank) Card {
	return Card{Colour: colour, Rank: rank}
}

// String returns the string representation of a card (e.g. "R1")
func (c Card) String() string {
	return fmt.Sprintf("%s%d", c.Colour, c.Rank)
}
