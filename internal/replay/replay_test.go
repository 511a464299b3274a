package replay

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanasim/internal/deck"
	"github.com/lox/hanasim/internal/game"
)

func finishedGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Options{Players: 2, Seed: 42, Logger: log.New(io.Discard)})
	require.NoError(t, err)
	g.Setup()

	require.NoError(t, g.ResolveMove(0, game.Discard{Index: 0}))
	require.NoError(t, g.ResolveMove(1, game.HintRank{Target: 0, Rank: 1}))
	return g
}

func TestExport_Document(t *testing.T) {
	g := finishedGame(t)
	doc := Export(g, []string{"Alice"})

	assert.Equal(t, []string{"Alice", "Player 2"}, doc.Players)
	assert.Equal(t, "No Variant", doc.Options.Variant)
	assert.Equal(t, 2, doc.Options.Players)
	assert.Equal(t, int64(42), doc.Options.Seed)

	// The deck is recorded in deal order, all fifty cards
	require.Len(t, doc.Deck, deck.Size)
	dealt := g.DeckCards()
	for i, record := range doc.Deck {
		assert.Equal(t, int(dealt[i].Colour), record.ColourIndex)
		assert.Equal(t, int(dealt[i].Rank), record.Rank)
	}
}

func TestExport_ActionRecords(t *testing.T) {
	g := finishedGame(t)
	doc := Export(g, nil)

	require.Len(t, doc.Actions, 2, "an in-progress game has no end record")
	assert.Equal(t, ActionRecord{Type: TypeDiscard, Target: 0}, doc.Actions[0])
	assert.Equal(t, ActionRecord{Type: TypeHintRank, Target: 0, Value: 1}, doc.Actions[1])
}

func TestExport_AppendsEndRecordWhenOver(t *testing.T) {
	g, err := game.New(game.Options{Players: 2, Seed: 7, Logger: log.New(io.Discard)})
	require.NoError(t, err)
	g.Setup()

	// Strike out deliberately: a play declared on the wrong colour never
	// advances a firework
	for !g.IsOver() {
		p := g.CurrentPlayer()
		colour := (g.HandCards(p)[0].Colour + 1) % deck.NumColours
		require.NoError(t, g.ResolveMove(p, game.Play{Index: 0, Colour: colour}))
	}

	doc := Export(g, nil)
	require.NotEmpty(t, doc.Actions)
	last := doc.Actions[len(doc.Actions)-1]
	assert.Equal(t, TypeGameEnd, last.Type)
	assert.Equal(t, int(g.EndReason()), last.Value)
}

func TestWriteFile_RoundTrips(t *testing.T) {
	g := finishedGame(t)
	doc := Export(g, []string{"Alice", "Bob"})

	path := filepath.Join(t.TempDir(), "game_000001.json")
	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Document
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, *doc, loaded)
}
