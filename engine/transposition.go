package engine

import (
	"rotchess/board"
)

const (
	// Flags
	AlphaFlag = iota // upper bound: score <= stored
	BetaFlag         // lower bound: score >= stored
	ExactFlag
)

// TerminalDepth marks entries for mate and stalemate, which never need a
// deeper search.
const TerminalDepth = 1 << 10

type TTEntry struct {
	Hash  uint64
	Depth int16
	Move  board.Move
	Score int32
	Flag  int8
}

// TransTable is a fixed-size hash table indexed by hash & (size-1), one
// entry per slot.
type TransTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTransTable allocates a table of size entries; size must be a power of two.
func NewTransTable(size int) *TransTable {
	return &TransTable{entries: make([]TTEntry, size), mask: uint64(size - 1)}
}

// Clear empties every slot.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Len is the capacity in entries.
func (tt *TransTable) Len() int { return len(tt.entries) }

// Probe looks up hash. The stored move is returned whenever the key matches.
// usable is set only when the entry is deep enough and its bound decides the
// (alpha, beta) window; score is then the value to return from the node.
func (tt *TransTable) Probe(hash uint64, depth, ply, alpha, beta int) (score int, move board.Move, usable bool) {
	e := &tt.entries[hash&tt.mask]
	if e.Hash != hash {
		return 0, board.NoMove, false
	}
	move = e.Move
	if int(e.Depth) < depth {
		return 0, move, false
	}
	norm := scoreFromTT(int(e.Score), ply)
	switch e.Flag {
	case ExactFlag:
		return norm, move, true
	case AlphaFlag:
		if norm <= alpha {
			return alpha, move, true
		}
	case BetaFlag:
		if norm >= beta {
			return beta, move, true
		}
	}
	return 0, move, false
}

// Store records a search result. A slot holding a different position is
// always replaced; the same position is kept if it was searched deeper, but
// its best move is refreshed.
func (tt *TransTable) Store(hash uint64, depth, ply int, move board.Move, score int, flag int8) {
	e := &tt.entries[hash&tt.mask]
	if e.Hash == hash && int(e.Depth) > depth {
		if move != board.NoMove {
			e.Move = move
		}
		return
	}
	if move == board.NoMove && e.Hash == hash {
		move = e.Move
	}
	*e = TTEntry{
		Hash:  hash,
		Depth: int16(min(depth, TerminalDepth)),
		Move:  move,
		Score: int32(scoreToTT(score, ply)),
		Flag:  flag,
	}
}

// Mate scores are stored relative to the node and converted back relative to
// the root, so the same position reached at another ply reports the right
// distance to mate.
func scoreToTT(score, ply int) int {
	switch {
	case score >= MateThreshold:
		return score + ply
	case score <= -MateThreshold:
		return score - ply
	}
	return score
}

func scoreFromTT(score, ply int) int {
	switch {
	case score >= MateThreshold:
		return score - ply
	case score <= -MateThreshold:
		return score + ply
	}
	return score
}
