package board

// AttackersTo returns the pieces of both colors attacking sq when the board
// occupancy is occ. Pieces outside occ may still be reported; callers that
// remove pieces should mask with occ.
func (p *Position) AttackersTo(sq Square, occ Bitboard) Bitboard {
	knights := p.pieces[WhiteKnight.Index()] | p.pieces[BlackKnight.Index()]
	kings := p.pieces[WhiteKing.Index()] | p.pieces[BlackKing.Index()]
	queens := p.pieces[WhiteQueen.Index()] | p.pieces[BlackQueen.Index()]
	diagonal := p.pieces[WhiteBishop.Index()] | p.pieces[BlackBishop.Index()] | queens
	cardinal := p.pieces[WhiteRook.Index()] | p.pieces[BlackRook.Index()] | queens
	return pawnAttacks[White][sq]&p.pieces[BlackPawn.Index()] |
		pawnAttacks[Black][sq]&p.pieces[WhitePawn.Index()] |
		knightAttacks[sq]&knights |
		kingAttacks[sq]&kings |
		BishopAttacks(sq, occ)&diagonal |
		RookAttacks(sq, occ)&cardinal
}

// IsAttacked reports whether side by attacks sq on the current board.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.attackedBy(sq, by, p.all)
}

func (p *Position) attackedBy(sq Square, by Color, occ Bitboard) bool {
	if pawnAttacks[by.Other()][sq]&p.PiecesOf(by, PieceTypePawn) != 0 {
		return true
	}
	if knightAttacks[sq]&p.PiecesOf(by, PieceTypeKnight) != 0 {
		return true
	}
	if kingAttacks[sq]&p.PiecesOf(by, PieceTypeKing) != 0 {
		return true
	}
	queens := p.PiecesOf(by, PieceTypeQueen)
	if BishopAttacks(sq, occ)&(p.PiecesOf(by, PieceTypeBishop)|queens) != 0 {
		return true
	}
	return RookAttacks(sq, occ)&(p.PiecesOf(by, PieceTypeRook)|queens) != 0
}

// CheckingPieces returns the squares of the pieces giving check to the side
// to move. It only looks at what the last move can have changed: the piece on
// its destination and a line opened through its origin. Castling, en passant
// and positions without a last move fall back to a full attack scan.
func (p *Position) CheckingPieces() Bitboard {
	us := p.sideToMove
	them := us.Other()
	king := p.kingSq[us]
	last := p.state().LastMove
	if last == NoMove || last.IsCastle() || last.Type() == EnPassant {
		return p.AttackersTo(king, p.all) & p.Occupancy(them)
	}

	from, to := last.From(), last.To()
	var checkers Bitboard
	switch pt := p.squares[to].Type(); pt {
	case PieceTypePawn:
		if pawnAttacks[us][king].Has(to) {
			checkers |= SquareBB(to)
		}
	case PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
		if Attacks(pt, king, p.all).Has(to) {
			checkers |= SquareBB(to)
		}
	case PieceTypeKing, PieceTypeNone:
	}

	if QueenRays(king).Has(from) {
		queens := p.PiecesOf(them, PieceTypeQueen)
		sliders := BishopAttacks(king, p.all)&(p.PiecesOf(them, PieceTypeBishop)|queens) |
			RookAttacks(king, p.all)&(p.PiecesOf(them, PieceTypeRook)|queens)
		checkers |= sliders &^ SquareBB(to)
	}
	return checkers
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.CheckingPieces() != 0 }

// PinnedPieces returns the pieces of color c pinned to their king. For each
// pinned square, rays holds the line from the pinner to the king inclusive.
func (p *Position) PinnedPieces(c Color, rays *[64]Bitboard) Bitboard {
	king := p.kingSq[c]
	them := c.Other()
	own := p.Occupancy(c)
	queens := p.PiecesOf(them, PieceTypeQueen)
	var pinned Bitboard

	cardinal := (p.PiecesOf(them, PieceTypeRook) | queens) & (rankMask[king] | fileMask[king])
	if cardinal != 0 {
		fromKing := RookAttacks(king, p.all)
		for cardinal != 0 {
			s := cardinal.PopLSB()
			if blocker := RookAttacks(s, p.all) & fromKing & own; blocker != 0 {
				pinned |= blocker
				rays[blocker.LSB()] = Between(s, king)
			}
		}
	}

	diagonal := (p.PiecesOf(them, PieceTypeBishop) | queens) & (diagMask[king] | antiDiagMask[king])
	if diagonal != 0 {
		fromKing := BishopAttacks(king, p.all)
		for diagonal != 0 {
			s := diagonal.PopLSB()
			if blocker := BishopAttacks(s, p.all) & fromKing & own; blocker != 0 {
				pinned |= blocker
				rays[blocker.LSB()] = Between(s, king)
			}
		}
	}
	return pinned
}
