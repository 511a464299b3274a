package game

import "errors"

// Precondition violations. These indicate a bug in the calling agent or
// driver, not a recoverable game condition; a move that returns one of these
// has made no state change.
var (
	ErrGameOver        = errors.New("game is over")
	ErrNotStarted      = errors.New("game has not been set up")
	ErrOutOfTurn       = errors.New("move attempted out of turn")
	ErrIndexOutOfRange = errors.New("hand index out of range")
	ErrNoHintsLeft     = errors.New("no hint tokens available")
	ErrSelfHint        = errors.New("players cannot hint themselves")
	ErrInvalidAction   = errors.New("invalid action")
)
