package board

import "math/rand"

// DefaultSeed seeds the shared Hasher so hashes are reproducible across runs.
const DefaultSeed = 0xC0DE

// Hasher holds the Zobrist keys for pieces, castling rights, en-passant file
// and side to move.
type Hasher struct {
	piece     [12][64]uint64
	castle    [16]uint64
	enPassant [8]uint64
	side      uint64
}

var defaultHasher = NewHasher(rand.NewSource(DefaultSeed))

// DefaultHasher returns the Hasher shared by positions created with NewPosition.
func DefaultHasher() *Hasher { return defaultHasher }

// NewHasher draws a fresh key table from src.
func NewHasher(src rand.Source) *Hasher {
	rnd := rand.New(src)
	h := &Hasher{}
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			h.piece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		h.castle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		h.enPassant[f] = rnd.Uint64()
	}
	h.side = rnd.Uint64()
	return h
}

// Piece is the key for piece p on sq.
func (h *Hasher) Piece(p Piece, sq Square) uint64 { return h.piece[p.Index()][sq] }

// Castling is the key for a full set of castling rights.
func (h *Hasher) Castling(cr CastlingRights) uint64 { return h.castle[cr&CastlingAll] }

// EnPassant is the key for an en-passant target; zero for NoSquare.
func (h *Hasher) EnPassant(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return h.enPassant[sq.File()]
}

// Side is XORed in when Black is to move.
func (h *Hasher) Side() uint64 { return h.side }

// ComputeHashes recalculates the full, piece-only and pawn-only hashes of p from scratch.
func (h *Hasher) ComputeHashes(p *Position) (full, pieces, pawns uint64) {
	for sq := A1; sq <= H8; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece {
			continue
		}
		k := h.Piece(pc, sq)
		pieces ^= k
		if pc.Type() == PieceTypePawn {
			pawns ^= k
		}
	}
	full = pieces
	if p.sideToMove == Black {
		full ^= h.side
	}
	st := p.state()
	full ^= h.Castling(st.Castling)
	full ^= h.EnPassant(st.EnPassant)
	return full, pieces, pawns
}
