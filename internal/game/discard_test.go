package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanasim/internal/deck"
)

func TestDiscardPile_InitialState(t *testing.T) {
	p := NewDiscardPile()

	assert.Equal(t, 0, p.Total())
	assert.Equal(t, 25, p.MaxScore())
	assert.Empty(t, p.DeadCards())

	// The single-copy fives are critical before anything is discarded
	critical := p.CriticalCards()
	require.Len(t, critical, 5)
	for _, card := range critical {
		assert.Equal(t, deck.MaxRank, card.Rank)
	}
}

func TestDiscardPile_DiscardCounts(t *testing.T) {
	p := NewDiscardPile()
	card := deck.NewCard(deck.Red, 1)

	p.Discard(card)
	assert.Equal(t, 1, p.Count(card))
	assert.Equal(t, 2, p.Remaining(card))
	assert.Equal(t, 1, p.Total())
}

func TestDiscardPile_SecondCopyBecomesCritical(t *testing.T) {
	p := NewDiscardPile()
	card := deck.NewCard(deck.Red, 2)

	p.Discard(card)
	assert.True(t, p.IsCritical(card), "one copy left after discarding a two-copy card")
	assert.False(t, p.IsDead(card))
}

func TestDiscardPile_LastCopyKillsColourTail(t *testing.T) {
	p := NewDiscardPile()
	card := deck.NewCard(deck.Red, 2)

	p.Discard(card)
	require.True(t, p.IsCritical(card))

	p.Discard(card)

	// critical -> dead in the same step, and every higher red rank dies too
	assert.False(t, p.IsCritical(card))
	for rank := deck.Rank(2); rank <= deck.MaxRank; rank++ {
		c := deck.NewCard(deck.Red, rank)
		assert.True(t, p.IsDead(c), "%s should be dead", c)
		assert.False(t, p.IsCritical(c), "%s cannot be both dead and critical", c)
	}
	assert.False(t, p.IsDead(deck.NewCard(deck.Red, 1)))
	assert.False(t, p.IsDead(deck.NewCard(deck.Green, 2)))

	// Red now contributes only rank 1: 25 - 4 = 21
	assert.Equal(t, 21, p.MaxScore())
}

func TestDiscardPile_CriticalAndDeadDisjoint(t *testing.T) {
	p := NewDiscardPile()

	// Discard every copy of a few cards and single copies of others
	for i := 0; i < 3; i++ {
		p.Discard(deck.NewCard(deck.Green, 1))
	}
	p.Discard(deck.NewCard(deck.Blue, 3))
	p.Discard(deck.NewCard(deck.Purple, 5))

	dead := make(map[deck.Card]bool)
	for _, c := range p.DeadCards() {
		dead[c] = true
	}
	for _, c := range p.CriticalCards() {
		assert.False(t, dead[c], "%s is in both critical and dead", c)
	}
}

func TestDiscardPile_DiscardingTheOnlyFive(t *testing.T) {
	p := NewDiscardPile()
	five := deck.NewCard(deck.Yellow, 5)
	require.True(t, p.IsCritical(five))

	p.Discard(five)
	assert.False(t, p.IsCritical(five))
	assert.True(t, p.IsDead(five))
	assert.Equal(t, 24, p.MaxScore())
}

func TestDiscardPile_MaxScoreStopsAtFirstGap(t *testing.T) {
	p := NewDiscardPile()

	// Kill red 1 entirely: the whole red firework is unreachable
	for i := 0; i < 3; i++ {
		p.Discard(deck.NewCard(deck.Red, 1))
	}
	assert.Equal(t, 20, p.MaxScore())

	// Later red discards cannot lower it further
	p.Discard(deck.NewCard(deck.Red, 4))
	assert.Equal(t, 20, p.MaxScore())
}

func TestDiscardPile_MaxScoreIdempotent(t *testing.T) {
	p := NewDiscardPile()
	p.Discard(deck.NewCard(deck.Green, 2))

	first := p.MaxScore()
	assert.Equal(t, first, p.MaxScore())
}

func TestDiscardPile_MaxScoreAfterDiscardLeavesPileUnchanged(t *testing.T) {
	p := NewDiscardPile()
	card := deck.NewCard(deck.Blue, 2)
	p.Discard(card)

	probe := p.MaxScoreAfterDiscard(card)
	assert.Equal(t, 21, probe, "losing the last blue 2 caps blue at rank 1")
	assert.Equal(t, 1, p.Count(card))
	assert.Equal(t, 25, p.MaxScore())
}

func TestDiscardPile_RemoveUndoesCount(t *testing.T) {
	p := NewDiscardPile()
	card := deck.NewCard(deck.Red, 1)

	p.Discard(card)
	p.Remove(card)
	assert.Equal(t, 0, p.Count(card))
	assert.Equal(t, 0, p.Total())
}

func TestDiscardPile_Reset(t *testing.T) {
	p := NewDiscardPile()
	for i := 0; i < 2; i++ {
		p.Discard(deck.NewCard(deck.Red, 2))
	}

	p.Reset()
	assert.Equal(t, 0, p.Total())
	assert.Equal(t, 25, p.MaxScore())
	assert.Empty(t, p.DeadCards())
	assert.Len(t, p.CriticalCards(), 5)
}
