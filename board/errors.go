package board

import "errors"

// Sentinel errors. Callers test with errors.Is; the returned errors carry the
// offending input as context.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrIllegalMove indicates move text that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")
)
