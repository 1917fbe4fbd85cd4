package board

// Ordering bonuses.
const (
	hintBonus       = 10000
	recaptureFactor = 5
	freeCaptureMult = 5
)

// OrderMoves sorts moves in place by a heuristic score, most promising first.
// hint, usually the transposition-table move, is placed first when present.
// Ordering never changes which moves are legal.
func (p *Position) OrderMoves(moves []Move, hint Move) {
	if len(moves) < 2 {
		return
	}
	var buf [256]int
	scores := buf[:0]
	if len(moves) > len(buf) {
		scores = make([]int, 0, len(moves))
	}

	recapture := NoSquare
	if last := p.state().LastMove; last != NoMove && last.IsCapture() {
		recapture = last.To()
	}
	endgameKing := p.PiecesOf(White, PieceTypeQueen) == 0 || p.PiecesOf(Black, PieceTypeQueen) == 0

	for _, m := range moves {
		scores = append(scores, p.scoreMove(m, hint, recapture, endgameKing))
	}

	// Insertion sort: lists are short and it keeps equal scores in generation order.
	for i := 1; i < len(moves); i++ {
		m, s := moves[i], scores[i]
		j := i - 1
		for ; j >= 0 && scores[j] < s; j-- {
			moves[j+1], scores[j+1] = moves[j], scores[j]
		}
		moves[j+1], scores[j+1] = m, s
	}
}

func (p *Position) scoreMove(m, hint Move, recapture Square, endgameKing bool) int {
	us := p.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	mover := p.squares[from]
	moverValue := mover.Type().Value()
	score := 0

	if m == hint {
		score += hintBonus
	}
	if m.IsPromotion() {
		score += m.PromotionType().Value()
	}

	if m.IsCapture() {
		victim := PieceTypePawn
		if m.Type() != EnPassant {
			victim = p.squares[to].Type()
		}
		switch {
		case to == recapture:
			score += recaptureFactor * victim.Value()
		case !p.attackedBy(to, them, p.all):
			score += freeCaptureMult * victim.Value()
		default:
			score += victim.Value() - moverValue
		}
	}

	if mover.Type() != PieceTypePawn && pawnAttacks[us][to]&p.PiecesOf(them, PieceTypePawn) != 0 {
		score -= moverValue
	}

	if mover.Type() == PieceTypeKing {
		table := &kingMG
		if endgameKing {
			table = &kingEG
		}
		score += (table[us][to] - table[us][from]) * us.Sign()
	} else {
		idx := mover.Index()
		score += (pieceSquare[idx][to] - pieceSquare[idx][from]) * us.Sign()
	}
	return score
}
