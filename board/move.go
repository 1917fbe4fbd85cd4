package board

// Move encodes a chess move in 16 bits: origin (6), destination (6), type tag (4).
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0
	moveToShift   = 6
	moveTypeShift = 12
	moveSqMask    = 0x3F
)

// MoveType is the 4-bit move tag. Bit 2 marks captures, bit 3 marks promotions,
// and the low two bits of a promotion select the piece.
type MoveType uint8

const (
	Quiet       MoveType = 0x0
	DoublePush  MoveType = 0x1
	KingCastle  MoveType = 0x2
	QueenCastle MoveType = 0x3
	Capture     MoveType = 0x4
	EnPassant   MoveType = 0x5

	KnightPromotion MoveType = 0x8
	BishopPromotion MoveType = 0x9
	RookPromotion   MoveType = 0xA
	QueenPromotion  MoveType = 0xB

	KnightPromotionCapture MoveType = 0xC
	BishopPromotionCapture MoveType = 0xD
	RookPromotionCapture   MoveType = 0xE
	QueenPromotionCapture  MoveType = 0xF
)

const (
	captureFlag   MoveType = 0x4
	promotionFlag MoveType = 0x8
)

// NoMove is the zero move. It is never legal since origin equals destination.
const NoMove Move = 0

func newMove(from, to Square, t MoveType) Move {
	return Move(uint16(from)&moveSqMask<<moveFromShift |
		uint16(to)&moveSqMask<<moveToShift |
		uint16(t)<<moveTypeShift)
}

// NewQuietMove is a non-capturing move of any piece.
func NewQuietMove(from, to Square) Move { return newMove(from, to, Quiet) }

// NewDoublePush is a two-square pawn advance.
func NewDoublePush(from, to Square) Move { return newMove(from, to, DoublePush) }

// NewCaptureMove is a regular capture on to.
func NewCaptureMove(from, to Square) Move { return newMove(from, to, Capture) }

// NewEnPassant is an en-passant capture landing on to.
func NewEnPassant(from, to Square) Move { return newMove(from, to, EnPassant) }

// NewCastle is a king move of two squares; the rook is relocated by make/unmake.
func NewCastle(from, to Square) Move {
	if to > from {
		return newMove(from, to, KingCastle)
	}
	return newMove(from, to, QueenCastle)
}

// NewPromotion promotes to pt, capturing when capture is set.
func NewPromotion(from, to Square, pt PieceType, capture bool) Move {
	t := promotionFlag | MoveType(pt-PieceTypeKnight)
	if capture {
		t |= captureFlag
	}
	return newMove(from, to, t)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square(uint16(m) >> moveFromShift & moveSqMask) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square(uint16(m) >> moveToShift & moveSqMask) }

// Type returns the move tag.
func (m Move) Type() MoveType { return MoveType(uint16(m) >> moveTypeShift) }

func (m Move) IsCapture() bool   { return m.Type()&captureFlag != 0 }
func (m Move) IsPromotion() bool { return m.Type()&promotionFlag != 0 }
func (m Move) IsCastle() bool    { return m.Type() == KingCastle || m.Type() == QueenCastle }

// PromotionType returns the piece a promotion produces, PieceTypeNone otherwise.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return PieceTypeNone
	}
	return PieceTypeKnight + PieceType(m.Type()&3)
}

// String renders the move in long algebraic form, e.g. e2e4 or e7e8q.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.PromotionType() {
	case PieceTypeKnight:
		s += "n"
	case PieceTypeBishop:
		s += "b"
	case PieceTypeRook:
		s += "r"
	case PieceTypeQueen:
		s += "q"
	}
	return s
}
