package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/hanasim/internal/deck"
)

// Game limits
const (
	MinPlayers = 2
	MaxPlayers = 5
	MaxHints   = 8
	MaxStrikes = 3
)

// HandSize returns the hand size for a player count: 5 cards for 2-3
// players, 4 cards for 4-5 players.
func HandSize(players int) int {
	if players <= 3 {
		return 5
	}
	return 4
}

// Phase is the lifecycle state of a game
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseEnded
)

// Options configures a game
type Options struct {
	// Players is the number of seats, 2-5
	Players int

	// Seed drives the deck shuffle. Games with equal options and seed play
	// out identically under the same agents.
	Seed int64

	// Deck supplies an explicit card order for deterministic tests. When
	// set, no shuffling happens and Reset replays the same order.
	Deck []deck.Card

	// HintOnForcedDiscard awards a hint token for the forced discard that
	// follows a failed play. Off by default; engine variants disagree on
	// this rule, so it is an explicit policy rather than an accident.
	HintOnForcedDiscard bool

	Logger *log.Logger
}

// Game owns the full state of one Hanabi game: deck, hands, fireworks,
// discard pile, hint and strike counters, score, turn order and the move
// history. It is the sole mutation path; one game advances strictly
// move-by-move and is not safe for concurrent use. Run one Game per worker.
type Game struct {
	opts     Options
	players  int
	handSize int

	hints      int
	strikes    int
	turn       int
	bonusTurns int

	phase     Phase
	endReason EndReason

	deck      *deck.Deck
	hands     []Hand
	fireworks Fireworks
	discards  *DiscardPile
	played    map[deck.Card]struct{}
	history   []Move

	logger *log.Logger
}

// New creates a game in the NotStarted phase. Call Setup to shuffle, deal
// and begin play.
func New(opts Options) (*Game, error) {
	if opts.Players < MinPlayers || opts.Players > MaxPlayers {
		return nil, fmt.Errorf("player count %d out of range %d-%d", opts.Players, MinPlayers, MaxPlayers)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		opts:     opts,
		players:  opts.Players,
		handSize: HandSize(opts.Players),
		hands:    make([]Hand, opts.Players),
		discards: NewDiscardPile(),
		played:   make(map[deck.Card]struct{}),
		logger:   logger,
	}
	if opts.Deck != nil {
		g.deck = deck.NewFixed(opts.Deck)
	} else {
		g.deck = deck.New(opts.Seed)
	}
	return g, nil
}

// Setup deals a fresh game and transitions into play. It is also how a
// finished game is restarted; Reset is an alias kept for driver loops.
func (g *Game) Setup() {
	if g.phase != PhaseNotStarted {
		g.deck.Reshuffle()
	}

	g.hints = MaxHints
	g.strikes = 0
	g.turn = 0
	g.bonusTurns = g.players
	g.endReason = EndReasonNone

	for i := range g.hands {
		g.hands[i].reset()
	}
	g.fireworks.reset()
	g.discards.Reset()
	clear(g.played)
	g.history = g.history[:0]

	// Round-robin deal, one card per player per pass, in deal order
	for i := 0; i < g.handSize; i++ {
		for p := 0; p < g.players; p++ {
			g.drawCard(p)
		}
	}

	g.phase = PhaseInProgress
	g.logger.Debug("game set up", "players", g.players, "handSize", g.handSize, "deck", g.deck.Remaining())
}

// Reset restores the game to a fresh, unplayed state without allocating a
// new instance. Behaviorally identical to constructing fresh, except that a
// seeded deck continues its shuffle stream so repeated simulations see new
// deals.
func (g *Game) Reset() {
	g.Setup()
}

// ResolveMove applies one action for the given player, then advances the
// turn and evaluates end-of-game conditions. Precondition violations return
// an error with no state change; an illegal play is not an error but a
// strike plus forced discard.
func (g *Game) ResolveMove(player int, action Action) error {
	switch g.phase {
	case PhaseNotStarted:
		return ErrNotStarted
	case PhaseEnded:
		return ErrGameOver
	}
	if player != g.CurrentPlayer() {
		return fmt.Errorf("%w: player %d moved on player %d's turn", ErrOutOfTurn, player, g.CurrentPlayer())
	}

	drew := true
	switch a := action.(type) {
	case Play:
		if err := g.checkIndex(player, a.Index); err != nil {
			return err
		}
		if !a.Colour.Valid() {
			return fmt.Errorf("%w: colour %d", ErrInvalidAction, a.Colour)
		}
		g.resolvePlay(player, a)

	case Discard:
		if err := g.checkIndex(player, a.Index); err != nil {
			return err
		}
		g.resolveDiscard(player, a.Index, true)

	case HintColour:
		if err := g.checkHint(player, a.Target); err != nil {
			return err
		}
		if !a.Colour.Valid() {
			return fmt.Errorf("%w: colour %d", ErrInvalidAction, a.Colour)
		}
		g.hints--
		matches := g.hands[a.Target].ApplyColourHint(a.Colour)
		g.logger.Debug("colour hint", "from", player, "to", a.Target, "colour", a.Colour, "matches", matches)
		drew = false

	case HintRank:
		if err := g.checkHint(player, a.Target); err != nil {
			return err
		}
		if !a.Rank.Valid() {
			return fmt.Errorf("%w: rank %d", ErrInvalidAction, a.Rank)
		}
		g.hints--
		matches := g.hands[a.Target].ApplyRankHint(a.Rank)
		g.logger.Debug("rank hint", "from", player, "to", a.Target, "rank", a.Rank, "matches", matches)
		drew = false

	default:
		return fmt.Errorf("%w: unrecognized action kind %T", ErrInvalidAction, action)
	}

	// Hints attempt no draw, so the empty-deck countdown ticks here instead
	if !drew && g.deck.IsEmpty() {
		g.consumeBonusTurn()
	}

	g.history = append(g.history, Move{Player: player, Action: action})
	g.turn++
	g.evaluateEnd()
	return nil
}

func (g *Game) resolvePlay(player int, a Play) {
	card := g.hands[player].Remove(a.Index)
	if g.fireworks.IsLegalPlay(a.Colour, card) {
		g.fireworks.Advance(a.Colour)
		g.played[card] = struct{}{}
		g.logger.Debug("play", "player", player, "card", card, "score", g.Score())
		if card.Rank == deck.MaxRank {
			// Completing a firework refunds a token
			g.addHint()
		}
		g.drawCard(player)
		return
	}

	g.strikes++
	g.logger.Debug("misplay", "player", player, "card", card, "strikes", g.strikes)
	g.discards.Discard(card)
	if g.opts.HintOnForcedDiscard {
		g.addHint()
	}
	g.drawCard(player)
}

// resolveDiscard routes a card already removed-by-index into the pile and
// draws a replacement. Only a voluntary discard refunds a hint token.
func (g *Game) resolveDiscard(player, index int, voluntary bool) {
	card := g.hands[player].Remove(index)
	g.discards.Discard(card)
	g.logger.Debug("discard", "player", player, "card", card, "voluntary", voluntary)
	if voluntary {
		g.addHint()
	}
	g.drawCard(player)
}

// drawCard appends the next deck card to the player's hand. Once the deck is
// exhausted the draw converts into one tick of the bonus-turn countdown; an
// empty deck is a normal state, never an error.
func (g *Game) drawCard(player int) {
	card, ok := g.deck.Draw()
	if !ok {
		g.consumeBonusTurn()
		return
	}
	g.hands[player].Draw(card)
}

func (g *Game) consumeBonusTurn() {
	if g.bonusTurns == 0 {
		return
	}
	g.bonusTurns--
	g.logger.Debug("deck empty", "bonusTurns", g.bonusTurns)
	if g.bonusTurns == 0 {
		g.end(EndReasonDeckExhausted)
	}
}

// addHint refunds one hint token; refunding at the cap is a no-op
func (g *Game) addHint() {
	if g.hints < MaxHints {
		g.hints++
	}
}

// evaluateEnd checks the three terminal conditions in priority order. A
// strike-out and a perfect score cannot coexist on one move, but both are
// checked every move regardless of which path produced the mutation, and
// they take priority over an exhaustion ending recorded mid-move.
func (g *Game) evaluateEnd() {
	switch {
	case g.strikes >= MaxStrikes:
		g.end(EndReasonStrikeout)
	case g.fireworks.Complete():
		g.end(EndReasonPerfectScore)
	case g.deck.IsEmpty() && g.bonusTurns == 0:
		g.end(EndReasonDeckExhausted)
	}
}

func (g *Game) end(reason EndReason) {
	if g.phase == PhaseEnded && g.endReason == reason {
		return
	}
	g.phase = PhaseEnded
	g.endReason = reason
	g.logger.Debug("game over", "reason", reason, "score", g.Score(), "turns", g.turn)
}

func (g *Game) checkIndex(player, index int) error {
	if index < 0 || index >= g.hands[player].Len() {
		return fmt.Errorf("%w: index %d, hand size %d", ErrIndexOutOfRange, index, g.hands[player].Len())
	}
	return nil
}

func (g *Game) checkHint(player, target int) error {
	if target < 0 || target >= g.players {
		return fmt.Errorf("%w: hint target %d", ErrInvalidAction, target)
	}
	if target == player {
		return ErrSelfHint
	}
	if g.hints == 0 {
		return ErrNoHintsLeft
	}
	return nil
}
