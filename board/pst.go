package board

// Piece-square tables from White's point of view, a1 first. Black tables are
// the vertical mirror with the sign flipped, so all positional scores are
// White-relative like material.

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddlegameTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndgameTable = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

var (
	// pieceSquare is indexed by Piece.Index; the king rows stay zero because
	// king placement is blended by game phase rather than accumulated.
	pieceSquare [12][64]int
	kingMG      [2][64]int
	kingEG      [2][64]int
)

func init() {
	tables := map[PieceType]*[64]int{
		PieceTypePawn:   &pawnTable,
		PieceTypeKnight: &knightTable,
		PieceTypeBishop: &bishopTable,
		PieceTypeRook:   &rookTable,
		PieceTypeQueen:  &queenTable,
	}
	for pt, t := range tables {
		for sq := A1; sq <= H8; sq++ {
			pieceSquare[NewPiece(White, pt).Index()][sq] = t[sq]
			pieceSquare[NewPiece(Black, pt).Index()][sq] = -t[sq.Mirror()]
		}
	}
	for sq := A1; sq <= H8; sq++ {
		kingMG[White][sq] = kingMiddlegameTable[sq]
		kingMG[Black][sq] = -kingMiddlegameTable[sq.Mirror()]
		kingEG[White][sq] = kingEndgameTable[sq]
		kingEG[Black][sq] = -kingEndgameTable[sq.Mirror()]
	}
}

// PieceSquare is the White-relative table value of p on sq. Kings report zero.
func PieceSquare(p Piece, sq Square) int { return pieceSquare[p.Index()][sq] }

// KingMiddlegame is the White-relative middlegame value of c's king on sq.
func KingMiddlegame(c Color, sq Square) int { return kingMG[c][sq] }

// KingEndgame is the White-relative endgame value of c's king on sq.
func KingEndgame(c Color, sq Square) int { return kingEG[c][sq] }
