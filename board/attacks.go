package board

// Precomputed attack tables. Sliding attacks use 256-entry tables per square,
// indexed by the occupancy of the line through the square collapsed into a byte.

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard
	pawnPushes    [2][64]Bitboard

	rankMask     [64]Bitboard
	fileMask     [64]Bitboard
	diagMask     [64]Bitboard
	antiDiagMask [64]Bitboard

	rankAttacks     [64][256]Bitboard
	fileAttacks     [64][256]Bitboard
	diagAttacks     [64][256]Bitboard
	antiDiagAttacks [64][256]Bitboard

	// firstRankAttacks[pos][occ] are the attacks of a slider on square pos of
	// an isolated 8-square line with occupancy occ. The origin bit is never set.
	firstRankAttacks [8][256]uint8

	betweenBB [64][64]Bitboard
)

func init() {
	initLineAttacks()
	initStepAttacks()
	initSliderTables()
	initBetween()
}

func initLineAttacks() {
	for pos := 0; pos < 8; pos++ {
		for occ := 0; occ < 256; occ++ {
			var att uint8
			for f := pos + 1; f < 8; f++ {
				att |= 1 << f
				if occ&(1<<f) != 0 {
					break
				}
			}
			for f := pos - 1; f >= 0; f-- {
				att |= 1 << f
				if occ&(1<<f) != 0 {
					break
				}
			}
			firstRankAttacks[pos][occ] = att
		}
	}
}

func stepTargets(sq Square, deltas [][2]int) Bitboard {
	var bb Bitboard
	for _, d := range deltas {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			bb |= SquareBB(NewSquare(f, r))
		}
	}
	return bb
}

func initStepAttacks() {
	knightDeltas := [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for sq := A1; sq <= H8; sq++ {
		knightAttacks[sq] = stepTargets(sq, knightDeltas)
		kingAttacks[sq] = stepTargets(sq, kingDeltas)
		pawnAttacks[White][sq] = stepTargets(sq, [][2]int{{-1, 1}, {1, 1}})
		pawnAttacks[Black][sq] = stepTargets(sq, [][2]int{{-1, -1}, {1, -1}})
		pawnPushes[White][sq] = stepTargets(sq, [][2]int{{0, 1}})
		pawnPushes[Black][sq] = stepTargets(sq, [][2]int{{0, -1}})
	}
}

func initSliderTables() {
	for sq := A1; sq <= H8; sq++ {
		f, r := sq.File(), sq.Rank()
		rankMask[sq] = Rank1 << (8 * uint(r))
		fileMask[sq] = FileA << uint(f)
		for s := A1; s <= H8; s++ {
			if s.File()-s.Rank() == f-r {
				diagMask[sq] |= SquareBB(s)
			}
			if s.File()+s.Rank() == f+r {
				antiDiagMask[sq] |= SquareBB(s)
			}
		}
		for occ := 0; occ < 256; occ++ {
			rankAttacks[sq][occ] = Bitboard(firstRankAttacks[f][occ]) << (8 * uint(r))
			// Build the file line as rank f of the transposed board, then transpose back.
			fileAttacks[sq][occ] = FlipDiagA1H8(Bitboard(firstRankAttacks[r][occ]) << (8 * uint(f)))
			// Spread each file bit over its file and keep the square on the diagonal.
			line := Bitboard(firstRankAttacks[f][occ]) * FileA
			diagAttacks[sq][occ] = line & diagMask[sq]
			antiDiagAttacks[sq][occ] = line & antiDiagMask[sq]
		}
	}
}

func initBetween() {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			if a == b {
				continue
			}
			occ := SquareBB(a) | SquareBB(b)
			switch {
			case rankMask[a].Has(b) || fileMask[a].Has(b):
				betweenBB[a][b] = RookAttacks(a, occ)&RookAttacks(b, occ) | occ
			case diagMask[a].Has(b) || antiDiagMask[a].Has(b):
				betweenBB[a][b] = BishopAttacks(a, occ)&BishopAttacks(b, occ) | occ
			}
		}
	}
}

func rankOccupancy(sq Square, occ Bitboard) uint8 {
	return uint8(occ >> (8 * uint(sq.Rank())))
}

func fileOccupancy(sq Square, occ Bitboard) uint8 {
	return uint8(FlipDiagA1H8(occ) >> (8 * uint(sq.File())))
}

// lineOccupancy collapses a diagonal onto a byte indexed by file. Every square
// of a diagonal sits on a distinct file, so the multiplication never carries.
func lineOccupancy(mask, occ Bitboard) uint8 {
	return uint8(((occ & mask) * FileA) >> 56)
}

// KnightAttacks returns the knight targets from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king targets from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq captures on.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// PawnPush returns the single-push square of a pawn of color c on sq.
func PawnPush(c Color, sq Square) Bitboard { return pawnPushes[c][sq] }

// RookAttacks returns rook attacks from sq against occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rankAttacks[sq][rankOccupancy(sq, occ)] | fileAttacks[sq][fileOccupancy(sq, occ)]
}

// BishopAttacks returns bishop attacks from sq against occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return diagAttacks[sq][lineOccupancy(diagMask[sq], occ)] |
		antiDiagAttacks[sq][lineOccupancy(antiDiagMask[sq], occ)]
}

// QueenAttacks returns queen attacks from sq against occupancy occ.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// Attacks dispatches on piece type. Pawns are not handled here since their
// attacks depend on color.
func Attacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case PieceTypeKnight:
		return knightAttacks[sq]
	case PieceTypeBishop:
		return BishopAttacks(sq, occ)
	case PieceTypeRook:
		return RookAttacks(sq, occ)
	case PieceTypeQueen:
		return QueenAttacks(sq, occ)
	case PieceTypeKing:
		return kingAttacks[sq]
	case PieceTypePawn, PieceTypeNone:
		return 0
	}
	return 0
}

// Between returns the squares from a to b inclusive of both endpoints when the
// two share a rank, file or diagonal, and the empty set otherwise.
func Between(a, b Square) Bitboard { return betweenBB[a][b] }

// Aligned reports whether a, b and c lie on one line.
func Aligned(a, b, c Square) bool {
	var line Bitboard
	switch {
	case rankMask[a].Has(b):
		line = rankMask[a]
	case fileMask[a].Has(b):
		line = fileMask[a]
	case diagMask[a].Has(b):
		line = diagMask[a]
	case antiDiagMask[a].Has(b):
		line = antiDiagMask[a]
	default:
		return false
	}
	return line.Has(c)
}

// QueenRays is the union of the four lines through sq, excluding sq.
func QueenRays(sq Square) Bitboard {
	return (rankMask[sq] | fileMask[sq] | diagMask[sq] | antiDiagMask[sq]) &^ SquareBB(sq)
}
