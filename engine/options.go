package engine

import (
	"fmt"
	"io"
	"log"
)

// Options are the search and evaluation tunables. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// TTEntries is the transposition-table capacity; must be a power of two.
	TTEntries int
	// PawnEntries is the pawn-structure cache capacity; must be a power of two.
	PawnEntries int

	// Null-move pruning.
	NullMoveMinDepth  int // null move only when depth exceeds this
	NullMoveReduction int
	NullMoveDeepR     int // reduction once depth exceeds NullMoveDeepDepth
	NullMoveDeepDepth int
	EndgameMaterial   int // total material at or below which null move is off

	LazyEvalMargin int
	MaxDepth       int

	// ClearHashEachSearch empties the transposition table before every search.
	ClearHashEachSearch bool

	// Logger receives one line per completed iteration.
	Logger *log.Logger
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		TTEntries:         1 << 17,
		PawnEntries:       1 << 14,
		NullMoveMinDepth:  2,
		NullMoveReduction: 2,
		NullMoveDeepR:     3,
		NullMoveDeepDepth: 6,
		EndgameMaterial:   2000,
		LazyEvalMargin:    400,
		MaxDepth:          64,
		Logger:            log.New(io.Discard, "", 0),
	}
}

// Validate checks the options for values the engine cannot work with.
func (o Options) Validate() error {
	if o.TTEntries <= 0 || o.TTEntries&(o.TTEntries-1) != 0 {
		return fmt.Errorf("transposition table size %d is not a power of two", o.TTEntries)
	}
	if o.PawnEntries <= 0 || o.PawnEntries&(o.PawnEntries-1) != 0 {
		return fmt.Errorf("pawn cache size %d is not a power of two", o.PawnEntries)
	}
	if o.MaxDepth < 1 || o.MaxDepth > MaxPly/2 {
		return fmt.Errorf("max depth %d out of range", o.MaxDepth)
	}
	if o.NullMoveReduction < 1 || o.NullMoveDeepR < 1 {
		return fmt.Errorf("null-move reductions must be positive")
	}
	return nil
}
