package engine

import (
	"rotchess/board"
)

var SeePieceValue = [7]int{
	board.PieceTypePawn:   board.PawnValue,
	board.PieceTypeKnight: board.KnightValue,
	board.PieceTypeBishop: board.BishopValue,
	board.PieceTypeRook:   board.RookValue,
	board.PieceTypeQueen:  board.QueenValue,
	board.PieceTypeKing:   20000,
}

// badCaptureMargin is the exchange loss tolerated before a capture counts as bad.
const badCaptureMargin = 50

// SEE estimates the material outcome of the capture m and the exchanges that
// follow on its destination square, from the mover's point of view. Sliders
// behind the exchanged pieces join in as the square opens up.
func SEE(p *board.Position, m board.Move) int {
	var gain [32]int
	from, to := m.From(), m.To()
	occ := p.Occupied() &^ board.SquareBB(from)

	if m.Type() == board.EnPassant {
		gain[0] = SeePieceValue[board.PieceTypePawn]
		victim := board.NewSquare(to.File(), from.Rank())
		occ &^= board.SquareBB(victim)
	} else {
		gain[0] = SeePieceValue[p.PieceAt(to).Type()]
	}

	attacker := p.PieceAt(from).Type()
	side := p.SideToMove().Other()
	attackers := p.AttackersTo(to, occ) & occ

	depth := 0
	for depth < len(gain)-1 {
		depth++
		// Speculative score if the piece now on the square is captured.
		gain[depth] = SeePieceValue[attacker] - gain[depth-1]
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		sq, pt, ok := leastValuableAttacker(p, attackers&p.Occupancy(side), side)
		if !ok {
			break
		}
		occ &^= board.SquareBB(sq)
		attackers = p.AttackersTo(to, occ) & occ
		attacker = pt
		side = side.Other()
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

func leastValuableAttacker(p *board.Position, attackers board.Bitboard, side board.Color) (board.Square, board.PieceType, bool) {
	if attackers == 0 {
		return board.NoSquare, board.PieceTypeNone, false
	}
	for pt := board.PieceTypePawn; pt <= board.PieceTypeKing; pt++ {
		if bb := attackers & p.PiecesOf(side, pt); bb != 0 {
			return bb.LSB(), pt, true
		}
	}
	return board.NoSquare, board.PieceTypeNone, false
}

// IsBadCapture reports whether m loses material. Capturing a clearly more
// valuable piece is never bad; otherwise the exchange is evaluated.
func IsBadCapture(p *board.Position, m board.Move) bool {
	victim := board.PieceTypePawn
	if m.Type() != board.EnPassant {
		victim = p.PieceAt(m.To()).Type()
	}
	if SeePieceValue[victim]-SeePieceValue[p.PieceAt(m.From()).Type()] > badCaptureMargin {
		return false
	}
	return SEE(p, m) < -badCaptureMargin
}
