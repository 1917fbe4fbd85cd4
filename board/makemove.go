package board

// castleKeep[sq] are the castling rights that survive a move touching sq,
// either as origin or destination.
var castleKeep [64]CastlingRights

func init() {
	for sq := range castleKeep {
		castleKeep[sq] = CastlingAll
	}
	castleKeep[E1] = CastlingAll &^ (CastlingWhiteK | CastlingWhiteQ)
	castleKeep[H1] = CastlingAll &^ CastlingWhiteK
	castleKeep[A1] = CastlingAll &^ CastlingWhiteQ
	castleKeep[E8] = CastlingAll &^ (CastlingBlackK | CastlingBlackQ)
	castleKeep[H8] = CastlingAll &^ CastlingBlackK
	castleKeep[A8] = CastlingAll &^ CastlingBlackQ
}

// enPassantVictim is the square of the pawn removed by an en-passant capture
// landing on to. It depends only on the destination rank.
func enPassantVictim(to Square) Square {
	if to.Rank() == 5 {
		return to - 8
	}
	return to + 8
}

// MakeMove applies a legal move in place.
func (p *Position) MakeMove(m Move) {
	prev := *p.state()
	st := IrreversibleState{
		Castling:        prev.Castling,
		EnPassant:       NoSquare,
		Captured:        NoPiece,
		HalfmoveClock:   prev.HalfmoveClock + 1,
		IrreversiblePly: prev.IrreversiblePly,
		LastMove:        m,
	}
	us := p.sideToMove
	from, to, t := m.From(), m.To(), m.Type()

	moving := p.removePiece(from)
	if m.IsCapture() {
		if t == EnPassant {
			st.Captured = p.removePiece(enPassantVictim(to))
		} else {
			st.Captured = p.removePiece(to)
		}
	}

	placed := moving
	if m.IsPromotion() {
		placed = NewPiece(us, m.PromotionType())
	}
	p.addPiece(placed, to)

	switch t {
	case KingCastle:
		p.addPiece(p.removePiece(to+1), to-1)
	case QueenCastle:
		p.addPiece(p.removePiece(to-2), to+1)
	case DoublePush:
		st.EnPassant = (from + to) / 2
	}

	if moving.Type() == PieceTypeKing {
		p.kingSq[us] = to
	}

	st.Castling &= castleKeep[from] & castleKeep[to]
	switch {
	case moving.Type() == PieceTypePawn || st.Captured != NoPiece:
		st.HalfmoveClock = 0
		st.IrreversiblePly = p.ply + 1
	case st.Castling != prev.Castling:
		st.IrreversiblePly = p.ply + 1
	}

	h := p.hasher
	p.hash ^= h.Castling(prev.Castling) ^ h.Castling(st.Castling)
	p.hash ^= h.EnPassant(prev.EnPassant) ^ h.EnPassant(st.EnPassant)
	p.hash ^= h.Side()

	p.sideToMove = us.Other()
	p.ply++
	p.history = append(p.history, st)
	p.hashHistory = append(p.hashHistory, p.hash)
	p.updateOccupancy()
}

// UnmakeMove reverts m, which must be the last move made.
func (p *Position) UnmakeMove(m Move) {
	st := *p.state()
	p.history = p.history[:len(p.history)-1]
	p.hashHistory = p.hashHistory[:len(p.hashHistory)-1]
	prev := p.state()
	p.ply--
	p.sideToMove = p.sideToMove.Other()
	us := p.sideToMove
	from, to, t := m.From(), m.To(), m.Type()

	switch t {
	case KingCastle:
		p.addPiece(p.removePiece(to-1), to+1)
	case QueenCastle:
		p.addPiece(p.removePiece(to+1), to-2)
	}

	moving := p.removePiece(to)
	if m.IsPromotion() {
		moving = NewPiece(us, PieceTypePawn)
	}
	p.addPiece(moving, from)

	if m.IsCapture() {
		capSq := to
		if t == EnPassant {
			capSq = enPassantVictim(to)
		}
		p.addPiece(st.Captured, capSq)
	}

	if moving.Type() == PieceTypeKing {
		p.kingSq[us] = from
	}

	h := p.hasher
	p.hash ^= h.Castling(st.Castling) ^ h.Castling(prev.Castling)
	p.hash ^= h.EnPassant(st.EnPassant) ^ h.EnPassant(prev.EnPassant)
	p.hash ^= h.Side()
	p.updateOccupancy()
}

// MakeNullMove passes the turn: the side flips and the en-passant square is
// cleared. It also marks a repetition boundary.
func (p *Position) MakeNullMove() {
	prev := *p.state()
	st := IrreversibleState{
		Castling:        prev.Castling,
		EnPassant:       NoSquare,
		HalfmoveClock:   prev.HalfmoveClock + 1,
		IrreversiblePly: p.ply + 1,
	}
	p.hash ^= p.hasher.EnPassant(prev.EnPassant) ^ p.hasher.Side()
	p.sideToMove = p.sideToMove.Other()
	p.ply++
	p.history = append(p.history, st)
	p.hashHistory = append(p.hashHistory, p.hash)
}

// UnmakeNullMove reverts MakeNullMove.
func (p *Position) UnmakeNullMove() {
	p.history = p.history[:len(p.history)-1]
	p.hashHistory = p.hashHistory[:len(p.hashHistory)-1]
	p.hash ^= p.hasher.EnPassant(p.state().EnPassant) ^ p.hasher.Side()
	p.sideToMove = p.sideToMove.Other()
	p.ply--
}

// IsRepetition reports whether the current position already occurred with the
// same side to move since the last irreversible move.
func (p *Position) IsRepetition() bool {
	stop := p.state().IrreversiblePly
	for i := p.ply - 2; i >= stop; i -= 2 {
		if p.hashHistory[i] == p.hash {
			return true
		}
	}
	return false
}
