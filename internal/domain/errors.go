package domain

import "errors"

var (
	// ErrUnsolvable means a partial grid has no valid completion.
	ErrUnsolvable = errors.New("grid has no valid completion")

	// ErrOutOfRange means a digit or cell address is outside the board.
	ErrOutOfRange = errors.New("out of range")
)
