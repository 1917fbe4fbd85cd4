package engine

import (
	"rotchess/board"
)

// Pawn structure terms, White-relative.
const (
	doubledMG  = -10
	doubledEG  = -20
	isolatedMG = -10
	isolatedEG = -15
)

// Passed pawn bonus by rank from the owner's side.
var (
	passedMG = [8]int{0, 5, 10, 15, 25, 40, 60, 0}
	passedEG = [8]int{0, 10, 15, 25, 40, 65, 100, 0}
)

var (
	fileBB         [8]board.Bitboard
	adjacentFiles  [8]board.Bitboard
	passedSpanMask [2][64]board.Bitboard
)

func init() {
	for f := 0; f < 8; f++ {
		fileBB[f] = board.FileA << uint(f)
	}
	for f := 0; f < 8; f++ {
		if f > 0 {
			adjacentFiles[f] |= fileBB[f-1]
		}
		if f < 7 {
			adjacentFiles[f] |= fileBB[f+1]
		}
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		span := fileBB[sq.File()] | adjacentFiles[sq.File()]
		for r := 0; r < 8; r++ {
			rank := board.Rank1 << (8 * uint(r))
			if r > sq.Rank() {
				passedSpanMask[board.White][sq] |= span & rank
			}
			if r < sq.Rank() {
				passedSpanMask[board.Black][sq] |= span & rank
			}
		}
	}
}

type pawnEntry struct {
	key    uint64
	mg, eg int32
	valid  bool
}

// PawnCache memoises pawn-structure scores by pawn hash.
type PawnCache struct {
	entries []pawnEntry
	mask    uint64
	hits    uint64
}

// NewPawnCache allocates size entries; size must be a power of two.
func NewPawnCache(size int) *PawnCache {
	return &PawnCache{entries: make([]pawnEntry, size), mask: uint64(size - 1)}
}

// Probe returns the pawn-structure score of p, computing and caching it on a miss.
func (pc *PawnCache) Probe(p *board.Position) (mg, eg int) {
	key := p.PawnHash()
	e := &pc.entries[key&pc.mask]
	if e.valid && e.key == key {
		pc.hits++
		return int(e.mg), int(e.eg)
	}
	mg, eg = PawnStructure(p)
	*e = pawnEntry{key: key, mg: int32(mg), eg: int32(eg), valid: true}
	return mg, eg
}

// PawnStructure scores doubled, isolated and passed pawns. White-relative.
func PawnStructure(p *board.Position) (mg, eg int) {
	for _, c := range [...]board.Color{board.White, board.Black} {
		ours := p.PiecesOf(c, board.PieceTypePawn)
		theirs := p.PiecesOf(c.Other(), board.PieceTypePawn)
		var cmg, ceg int
		for f := 0; f < 8; f++ {
			if n := (ours & fileBB[f]).Count(); n > 1 {
				cmg += (n - 1) * doubledMG
				ceg += (n - 1) * doubledEG
			}
		}
		for bb := ours; bb != 0; {
			sq := bb.PopLSB()
			if ours&adjacentFiles[sq.File()] == 0 {
				cmg += isolatedMG
				ceg += isolatedEG
			}
			if theirs&passedSpanMask[c][sq] == 0 {
				rank := sq.Rank()
				if c == board.Black {
					rank = 7 - rank
				}
				cmg += passedMG[rank]
				ceg += passedEG[rank]
			}
		}
		mg += cmg * c.Sign()
		eg += ceg * c.Sign()
	}
	return mg, eg
}
