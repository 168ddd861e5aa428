package model

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid piece selection")
	ErrInvalidMove      = errors.New("invalid move")
	ErrMalformedInput   = errors.New("malformed input")
	ErrGameOver         = errors.New("game is over")
	ErrUnknownColor     = errors.New("unknown color")
)

// IsRecoverable reports whether err only means the player should be asked
// for another move.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, ErrInvalidMove) ||
		errors.Is(err, ErrMalformedInput)
}
