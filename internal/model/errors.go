package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidMove     = errors.New("cells are not on a shared row or column")
	ErrIllegalMove     = errors.New("move is not legal on this board")
	ErrInvalidAmount   = errors.New("invalid bonus amount")

	// Game errors
	ErrNoLegalMove = errors.New("no legal move")
	ErrBankrupt    = errors.New("bankrupt")
	ErrGameOver    = errors.New("game is over")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown strategy")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Protocol errors
	ErrInvalidCommand = errors.New("invalid command")
)
