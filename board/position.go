package board

import (
	"strings"
)

// IrreversibleState holds what a move destroys and cannot be recomputed from
// the move value alone. One snapshot is pushed per move and popped on undo.
type IrreversibleState struct {
	Castling        CastlingRights
	EnPassant       Square
	Captured        Piece
	HalfmoveClock   int
	IrreversiblePly int // ply of the last capture, pawn move or castling-rights change
	LastMove        Move
}

// Position is the board: piece placement, side to move, incremental scores,
// hashes and the stack of irreversible state. It is mutated in place by
// MakeMove/UnmakeMove.
type Position struct {
	pieces  [12]Bitboard // indexed by Piece.Index
	white   Bitboard
	black   Bitboard
	all     Bitboard
	squares [64]Piece

	sideToMove Color
	kingSq     [2]Square

	material    int // White-relative
	positional  int // White-relative, kings excluded
	pieceCounts [12]int

	hash      uint64
	pieceHash uint64
	pawnHash  uint64

	ply         int // plies since reset
	gamePlyBase int // game ply at reset, derived from the FEN full-move number
	history     []IrreversibleState
	hashHistory []uint64 // full hash at each ply since reset

	hasher *Hasher
}

// NewPosition returns the standard starting position using the shared Hasher.
func NewPosition() *Position {
	p, err := NewPositionFromFEN(StartFEN, DefaultHasher())
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFromFEN builds a position from fen using hasher h.
func NewPositionFromFEN(fen string, h *Hasher) (*Position, error) {
	p := &Position{hasher: h}
	if err := p.Reset(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns an independent deep copy, e.g. for a parallel worker.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]IrreversibleState(nil), p.history...)
	c.hashHistory = append([]uint64(nil), p.hashHistory...)
	return &c
}

func (p *Position) state() *IrreversibleState { return &p.history[len(p.history)-1] }

// State returns the current irreversible snapshot.
func (p *Position) State() IrreversibleState { return *p.state() }

func (p *Position) SideToMove() Color        { return p.sideToMove }
func (p *Position) KingSquare(c Color) Square { return p.kingSq[c] }
func (p *Position) PieceAt(sq Square) Piece   { return p.squares[sq] }
func (p *Position) Castling() CastlingRights  { return p.state().Castling }
func (p *Position) EnPassant() Square         { return p.state().EnPassant }
func (p *Position) HalfmoveClock() int        { return p.state().HalfmoveClock }
func (p *Position) LastMove() Move            { return p.state().LastMove }
func (p *Position) Ply() int                  { return p.ply }
func (p *Position) Hasher() *Hasher           { return p.hasher }

// FullmoveNumber is the FEN full-move counter for the current position.
func (p *Position) FullmoveNumber() int {
	return (p.gamePlyBase+p.ply)/2 + 1
}

// Hash is the full Zobrist hash: pieces, side, castling rights and en-passant file.
func (p *Position) Hash() uint64 { return p.hash }

// PieceHash covers piece placement only.
func (p *Position) PieceHash() uint64 { return p.pieceHash }

// PawnHash covers pawn placement only.
func (p *Position) PawnHash() uint64 { return p.pawnHash }

// Material is the White-relative material balance.
func (p *Position) Material() int { return p.material }

// Positional is the White-relative piece-square sum, kings excluded.
func (p *Position) Positional() int { return p.positional }

// TotalMaterial is the material of both sides added together.
func (p *Position) TotalMaterial() int {
	total := 0
	for i, pc := range allPieces {
		total += p.pieceCounts[i] * pc.Type().Value()
	}
	return total
}

// Count returns how many pieces of kind pc are on the board.
func (p *Position) Count(pc Piece) int { return p.pieceCounts[pc.Index()] }

// Pieces returns the bitboard of pc.
func (p *Position) Pieces(pc Piece) Bitboard { return p.pieces[pc.Index()] }

// PiecesOf returns the bitboard of c's pieces of type pt.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	return p.pieces[NewPiece(c, pt).Index()]
}

// Occupancy returns the squares occupied by c.
func (p *Position) Occupancy(c Color) Bitboard {
	if c == White {
		return p.white
	}
	return p.black
}

// Occupied returns all occupied squares.
func (p *Position) Occupied() Bitboard { return p.all }

// addPiece places pc on an empty square and updates scores and hashes.
func (p *Position) addPiece(pc Piece, sq Square) {
	idx := pc.Index()
	p.pieces[idx] |= SquareBB(sq)
	p.squares[sq] = pc
	p.pieceCounts[idx]++
	p.material += pc.Value()
	p.positional += pieceSquare[idx][sq]
	k := p.hasher.Piece(pc, sq)
	p.hash ^= k
	p.pieceHash ^= k
	if pc.Type() == PieceTypePawn {
		p.pawnHash ^= k
	}
}

// removePiece clears sq and returns what stood there.
func (p *Position) removePiece(sq Square) Piece {
	pc := p.squares[sq]
	idx := pc.Index()
	p.pieces[idx] &^= SquareBB(sq)
	p.squares[sq] = NoPiece
	p.pieceCounts[idx]--
	p.material -= pc.Value()
	p.positional -= pieceSquare[idx][sq]
	k := p.hasher.Piece(pc, sq)
	p.hash ^= k
	p.pieceHash ^= k
	if pc.Type() == PieceTypePawn {
		p.pawnHash ^= k
	}
	return pc
}

// updateOccupancy rebuilds the derived boards from the 12 piece boards.
func (p *Position) updateOccupancy() {
	p.white, p.black = 0, 0
	for i := 0; i < 12; i += 2 {
		p.white |= p.pieces[i]
		p.black |= p.pieces[i+1]
	}
	p.all = p.white | p.black
}

// String draws the board from White's side with rank 8 on top.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(p.squares[NewSquare(file, rank)].Char())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(p.FEN())
	sb.WriteByte('\n')
	return sb.String()
}
