package board

// GenerateMoves returns all legal moves for the side to move.
func (p *Position) GenerateMoves() []Move {
	return p.GenerateMovesInto(make([]Move, 0, 64), false)
}

// GenerateCaptures returns the legal capturing moves, en passant and
// promotion-captures included.
func (p *Position) GenerateCaptures() []Move {
	return p.GenerateMovesInto(make([]Move, 0, 16), true)
}

// GenerateMovesInto appends the legal moves to dst and returns the extended slice.
func (p *Position) GenerateMovesInto(dst []Move, capturesOnly bool) []Move {
	us := p.sideToMove
	them := us.Other()
	king := p.kingSq[us]
	own := p.Occupancy(us)
	enemy := p.Occupancy(them)
	checkers := p.CheckingPieces()

	targets := ^own
	if capturesOnly {
		targets = enemy
	}

	// King steps are tested against a board without the king so it cannot
	// hide behind itself on a checking line.
	occNoKing := p.all &^ SquareBB(king)
	for kt := kingAttacks[king] & targets; kt != 0; {
		to := kt.PopLSB()
		if !p.attackedBy(to, them, occNoKing) {
			dst = appendMove(dst, king, to, enemy)
		}
	}

	// Double check: only the king may move.
	if checkers.Count() > 1 {
		return dst
	}

	checkMask := Universe
	if checkers != 0 {
		c := checkers.LSB()
		checkMask = Between(c, king) | SquareBB(c)
	} else if !capturesOnly {
		dst = p.appendCastles(dst)
	}

	var rays [64]Bitboard
	pinned := p.PinnedPieces(us, &rays)
	mask := targets & checkMask

	// Pinned knights can never move.
	for bb := p.PiecesOf(us, PieceTypeKnight) &^ pinned; bb != 0; {
		from := bb.PopLSB()
		dst = appendTargets(dst, from, knightAttacks[from]&mask, enemy)
	}

	for _, pt := range [...]PieceType{PieceTypeBishop, PieceTypeRook, PieceTypeQueen} {
		for bb := p.PiecesOf(us, pt); bb != 0; {
			from := bb.PopLSB()
			att := Attacks(pt, from, p.all) & mask
			if pinned.Has(from) {
				att &= rays[from]
			}
			dst = appendTargets(dst, from, att, enemy)
		}
	}

	return p.appendPawnMoves(dst, pinned, &rays, checkMask, capturesOnly)
}

func appendMove(dst []Move, from, to Square, enemy Bitboard) []Move {
	if enemy.Has(to) {
		return append(dst, NewCaptureMove(from, to))
	}
	return append(dst, NewQuietMove(from, to))
}

func appendTargets(dst []Move, from Square, targets, enemy Bitboard) []Move {
	for targets != 0 {
		dst = appendMove(dst, from, targets.PopLSB(), enemy)
	}
	return dst
}

func appendPromotions(dst []Move, from, to Square, capture bool) []Move {
	return append(dst,
		NewPromotion(from, to, PieceTypeQueen, capture),
		NewPromotion(from, to, PieceTypeRook, capture),
		NewPromotion(from, to, PieceTypeBishop, capture),
		NewPromotion(from, to, PieceTypeKnight, capture),
	)
}

func (p *Position) appendPawnMoves(dst []Move, pinned Bitboard, rays *[64]Bitboard, checkMask Bitboard, capturesOnly bool) []Move {
	us := p.sideToMove
	enemy := p.Occupancy(us.Other())
	lastRank, startRank := Rank8, Rank2
	if us == Black {
		lastRank, startRank = Rank1, Rank7
	}
	ep := p.state().EnPassant

	for pawns := p.PiecesOf(us, PieceTypePawn); pawns != 0; {
		from := pawns.PopLSB()
		allowed := checkMask
		if pinned.Has(from) {
			allowed &= rays[from]
		}

		for caps := pawnAttacks[us][from] & enemy & allowed; caps != 0; {
			to := caps.PopLSB()
			if lastRank.Has(to) {
				dst = appendPromotions(dst, from, to, true)
			} else {
				dst = append(dst, NewCaptureMove(from, to))
			}
		}

		if ep != NoSquare && pawnAttacks[us][from].Has(ep) && p.enPassantLegal(from, ep, allowed) {
			dst = append(dst, NewEnPassant(from, ep))
		}

		if capturesOnly {
			continue
		}
		push := pawnPushes[us][from] &^ p.all
		if push == 0 {
			continue
		}
		if push&allowed != 0 {
			to := push.LSB()
			if lastRank.Has(to) {
				dst = appendPromotions(dst, from, to, false)
			} else {
				dst = append(dst, NewQuietMove(from, to))
			}
		}
		if startRank.Has(from) {
			if dbl := pawnPushes[us][push.LSB()] &^ p.all & allowed; dbl != 0 {
				dst = append(dst, NewDoublePush(from, dbl.LSB()))
			}
		}
	}
	return dst
}

// enPassantLegal checks an en-passant capture from -> ep against the check
// and pin mask, then rebuilds the occupancy after both pawns leave and the
// capturer lands, and tests every line to the king. This covers the rank case
// where both pawns shielded the king as well as diagonal exposures.
func (p *Position) enPassantLegal(from, ep Square, allowed Bitboard) bool {
	victim := enPassantVictim(ep)
	if !allowed.Has(ep) && !allowed.Has(victim) {
		return false
	}
	// A pinned capturer must stay on its ray; the victim square never lies on it.
	if !allowed.Has(ep) {
		var rays [64]Bitboard
		if p.PinnedPieces(p.sideToMove, &rays).Has(from) {
			return false
		}
	}
	us := p.sideToMove
	them := us.Other()
	king := p.kingSq[us]
	occ := p.all&^SquareBB(from)&^SquareBB(victim) | SquareBB(ep)
	queens := p.PiecesOf(them, PieceTypeQueen)
	if RookAttacks(king, occ)&(p.PiecesOf(them, PieceTypeRook)|queens) != 0 {
		return false
	}
	return BishopAttacks(king, occ)&(p.PiecesOf(them, PieceTypeBishop)|queens) == 0
}

func (p *Position) appendCastles(dst []Move) []Move {
	us := p.sideToMove
	them := us.Other()
	cr := p.state().Castling
	home, rookPiece := E1, WhiteRook
	kingSide, queenSide := CastlingWhiteK, CastlingWhiteQ
	if us == Black {
		home, rookPiece = E8, BlackRook
		kingSide, queenSide = CastlingBlackK, CastlingBlackQ
	}
	if p.kingSq[us] != home || cr&(kingSide|queenSide) == 0 {
		return dst
	}
	occ := p.all &^ SquareBB(home)
	safe := func(squares ...Square) bool {
		for _, sq := range squares {
			if p.attackedBy(sq, them, occ) {
				return false
			}
		}
		return true
	}
	if cr&kingSide != 0 && p.squares[home+3] == rookPiece &&
		p.all&(SquareBB(home+1)|SquareBB(home+2)) == 0 &&
		safe(home, home+1, home+2) {
		dst = append(dst, NewCastle(home, home+2))
	}
	if cr&queenSide != 0 && p.squares[home-4] == rookPiece &&
		p.all&(SquareBB(home-1)|SquareBB(home-2)|SquareBB(home-3)) == 0 &&
		safe(home, home-1, home-2) {
		dst = append(dst, NewCastle(home, home-2))
	}
	return dst
}
