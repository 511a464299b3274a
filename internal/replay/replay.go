// Package replay serialises a finished game into a structured document an
// external viewer can load: the seat names, the full deck in deal order,
// the ordered action history and an options block.
package replay

import (
	"encoding/json"
	"fmt"

	"github.com/lox/hanasim/internal/fileutil"
	"github.com/lox/hanasim/internal/game"
)

// Action record types
const (
	TypePlay       = 0
	TypeDiscard    = 1
	TypeHintColour = 2
	TypeHintRank   = 3
	TypeGameEnd    = 4
)

// Document is the exported replay log
type Document struct {
	Players []string       `json:"players"`
	Deck    []CardRecord   `json:"deck"`
	Actions []ActionRecord `json:"actions"`
	Options OptionsRecord  `json:"options"`
}

// CardRecord identifies one card by colour index and rank
type CardRecord struct {
	ColourIndex int `json:"colourIndex"`
	Rank        int `json:"rank"`
}

// ActionRecord is one history entry. For plays and discards the target is
// the hand index; for hints it is the receiving player and value carries the
// hinted attribute. The final record explains how the game ended.
type ActionRecord struct {
	Type   int `json:"type"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

// OptionsRecord captures how the game was configured
type OptionsRecord struct {
	Variant string `json:"variant"`
	Players int    `json:"numPlayers"`
	Seed    int64  `json:"seed"`
}

// Export builds a replay document from a game. Player names default to
// "Player N" when names is shorter than the seat count.
func Export(g *game.Game, names []string) *Document {
	players := make([]string, g.NumPlayers())
	for i := range players {
		if i < len(names) {
			players[i] = names[i]
		} else {
			players[i] = fmt.Sprintf("Player %d", i+1)
		}
	}

	cards := g.DeckCards()
	deckRecords := make([]CardRecord, len(cards))
	for i, card := range cards {
		deckRecords[i] = CardRecord{ColourIndex: int(card.Colour), Rank: int(card.Rank)}
	}

	history := g.History()
	actions := make([]ActionRecord, 0, len(history)+1)
	for _, move := range history {
		actions = append(actions, actionRecord(move.Action))
	}
	if g.IsOver() {
		actions = append(actions, ActionRecord{Type: TypeGameEnd, Target: 0, Value: int(g.EndReason())})
	}

	return &Document{
		Players: players,
		Deck:    deckRecords,
		Actions: actions,
		Options: OptionsRecord{
			Variant: "No Variant",
			Players: g.NumPlayers(),
			Seed:    g.Seed(),
		},
	}
}

func actionRecord(action game.Action) ActionRecord {
	switch a := action.(type) {
	case game.Play:
		return ActionRecord{Type: TypePlay, Target: a.Index, Value: int(a.Colour)}
	case game.Discard:
		return ActionRecord{Type: TypeDiscard, Target: a.Index}
	case game.HintColour:
		return ActionRecord{Type: TypeHintColour, Target: a.Target, Value: int(a.Colour)}
	case game.HintRank:
		return ActionRecord{Type: TypeHintRank, Target: a.Target, Value: int(a.Rank)}
	default:
		return ActionRecord{Type: TypeGameEnd}
	}
}

// WriteFile marshals the document and writes it atomically, so a viewer
// watching the directory never reads a partial file.
func WriteFile(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal replay: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}
