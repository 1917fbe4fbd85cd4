package board

import "fmt"

// Color is the side that owns a piece or is to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

// Sign is +1 for White and -1 for Black; scores are kept from White's point of view.
func (c Color) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Value is the material value of the type in centipawns. Kings carry no material.
func (pt PieceType) Value() int {
	switch pt {
	case PieceTypePawn:
		return PawnValue
	case PieceTypeKnight:
		return KnightValue
	case PieceTypeBishop:
		return BishopValue
	case PieceTypeRook:
		return RookValue
	case PieceTypeQueen:
		return QueenValue
	case PieceTypeKing, PieceTypeNone:
		return 0
	}
	return 0
}

// IsSlider reports whether the type attacks along lines.
func (pt PieceType) IsSlider() bool {
	return pt == PieceTypeBishop || pt == PieceTypeRook || pt == PieceTypeQueen
}

// Letter is the upper-case SAN letter of the type, empty for pawns.
func (pt PieceType) Letter() string {
	switch pt {
	case PieceTypeKnight:
		return "N"
	case PieceTypeBishop:
		return "B"
	case PieceTypeRook:
		return "R"
	case PieceTypeQueen:
		return "Q"
	case PieceTypeKing:
		return "K"
	case PieceTypePawn, PieceTypeNone:
		return ""
	}
	return ""
}

// Material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
)

// Piece is a colored piece. Black pieces are encoded as (type | 8) so that
// piece & 7 gives the type and piece & 8 marks Black.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// NewPiece combines a side and a colorless type.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3) }

// Index maps the 12 pieces onto 0..11 in the order
// WP, BP, WN, BN, WB, BB, WR, BR, WQ, BQ, WK, BK.
func (p Piece) Index() int { return (int(p.Type())-1)*2 + int(p.Color()) }

// Value is the signed material value, positive for White.
func (p Piece) Value() int { return p.Type().Value() * p.Color().Sign() }

// allPieces lists the 12 pieces in Index order.
var allPieces = [12]Piece{
	WhitePawn, BlackPawn, WhiteKnight, BlackKnight, WhiteBishop, BlackBishop,
	WhiteRook, BlackRook, WhiteQueen, BlackQueen, WhiteKing, BlackKing,
}

// Char is the FEN letter of the piece.
func (p Piece) Char() byte {
	const letters = " PNBRQK"
	if p == NoPiece {
		return '.'
	}
	ch := letters[p.Type()]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return NoPiece
}

// Square represents a board position, a1 = 0 .. h8 = 63.
type Square int

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) Rank() int { return int(sq) >> 3 }
func (sq Square) File() int { return int(sq) & 7 }

// Mirror flips the square vertically (a1 <-> a8).
func (sq Square) Mirror() Square { return sq ^ 56 }

func (sq Square) String() string {
	if sq < 0 || sq >= NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// CastlingRights holds the four castling permissions as bit flags.
type CastlingRights uint8

const (
	CastlingBlackQ CastlingRights = 1 << iota
	CastlingBlackK
	CastlingWhiteQ
	CastlingWhiteK

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b []byte
	if cr&CastlingWhiteK != 0 {
		b = append(b, 'K')
	}
	if cr&CastlingWhiteQ != 0 {
		b = append(b, 'Q')
	}
	if cr&CastlingBlackK != 0 {
		b = append(b, 'k')
	}
	if cr&CastlingBlackQ != 0 {
		b = append(b, 'q')
	}
	return string(b)
}
