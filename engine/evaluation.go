package engine

import (
	"rotchess/board"
)

// =============================================================================
// EVALUATION CONSTANTS
// =============================================================================

const (
	// Without pawns, a material difference below this cannot force mate.
	insufficientMaterial = 400

	BishopPairBonus = 30

	// Game phase weights; TotalPhase is the starting sum.
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	TotalPhase  = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase
	PhaseScale  = 256

	mopUpCenterWeight = 10
	mopUpKingsWeight  = 4
)

// Per-square mobility and king-zone attack weights. Minor pieces weigh more
// in the middlegame than majors.
var (
	mobilityMG   = [7]int{board.PieceTypeKnight: 4, board.PieceTypeBishop: 4, board.PieceTypeRook: 2, board.PieceTypeQueen: 1}
	mobilityEG   = [7]int{board.PieceTypeKnight: 3, board.PieceTypeBishop: 3, board.PieceTypeRook: 4, board.PieceTypeQueen: 2}
	kingAttackMG = [7]int{board.PieceTypeKnight: 8, board.PieceTypeBishop: 8, board.PieceTypeRook: 5, board.PieceTypeQueen: 4}
	kingAttackEG = [7]int{board.PieceTypeKnight: 2, board.PieceTypeBishop: 2, board.PieceTypeRook: 2, board.PieceTypeQueen: 2}
)

// Evaluator scores positions statically. It reads the position it was built
// with and keeps a pawn-structure cache keyed by pawn hash.
type Evaluator struct {
	pos        *board.Position
	pawns      *PawnCache
	lazyMargin int
}

// NewEvaluator returns an evaluator bound to pos.
func NewEvaluator(pos *board.Position, opts Options) *Evaluator {
	return &Evaluator{
		pos:        pos,
		pawns:      NewPawnCache(opts.PawnEntries),
		lazyMargin: opts.LazyEvalMargin,
	}
}

// Evaluate returns the score from the side to move's point of view. When the
// material and placement terms alone are further than the lazy margin outside
// (alpha, beta), the activity terms are skipped.
func (e *Evaluator) Evaluate(alpha, beta int) int {
	p := e.pos
	sign := p.SideToMove().Sign()
	if !SufficientMaterial(p) {
		return 0
	}

	phase := GamePhase(p)
	wk, bk := p.KingSquare(board.White), p.KingSquare(board.Black)
	base := p.Material() + p.Positional()
	mg := base + board.KingMiddlegame(board.White, wk) + board.KingMiddlegame(board.Black, bk)
	eg := base + board.KingEndgame(board.White, wk) + board.KingEndgame(board.Black, bk) + MopUp(p)

	pawnMG, pawnEG := e.pawns.Probe(p)
	mg += pawnMG
	eg += pawnEG

	flat := bishopPair(p)
	lazy := (blend(mg, eg, phase) + flat) * sign
	if lazy+e.lazyMargin <= alpha || lazy-e.lazyMargin >= beta {
		return lazy
	}

	actMG, actEG := activity(p, board.White)
	bMG, bEG := activity(p, board.Black)
	mg += actMG - bMG
	eg += actEG - bEG
	return (blend(mg, eg, phase) + flat) * sign
}

func blend(mg, eg, phase int) int {
	return (mg*(PhaseScale-phase) + eg*phase) / PhaseScale
}

// SufficientMaterial reports whether either side can still force mate.
func SufficientMaterial(p *board.Position) bool {
	if p.PiecesOf(board.White, board.PieceTypePawn)|p.PiecesOf(board.Black, board.PieceTypePawn) != 0 {
		return true
	}
	return board.Abs(p.Material()) >= insufficientMaterial
}

// GamePhase maps the remaining pieces onto 0 (opening) .. 256 (bare kings).
func GamePhase(p *board.Position) int {
	remaining := 0
	for _, c := range [...]board.Color{board.White, board.Black} {
		remaining += p.PiecesOf(c, board.PieceTypeKnight).Count() * knightPhase
		remaining += p.PiecesOf(c, board.PieceTypeBishop).Count() * bishopPhase
		remaining += p.PiecesOf(c, board.PieceTypeRook).Count() * rookPhase
		remaining += p.PiecesOf(c, board.PieceTypeQueen).Count() * queenPhase
	}
	remaining = min(remaining, TotalPhase)
	return (TotalPhase - remaining) * PhaseScale / TotalPhase
}

// MopUp rewards the side ahead in material for pushing the losing king to the
// edge and bringing its own king close. White-relative.
func MopUp(p *board.Position) int {
	material := p.Material()
	if material == 0 {
		return 0
	}
	winner := board.White
	if material < 0 {
		winner = board.Black
	}
	loserKing := p.KingSquare(winner.Other())
	kingDist := board.ManhattanDistance(p.KingSquare(board.White), p.KingSquare(board.Black))
	bonus := mopUpCenterWeight*board.CenterDistance(loserKing) + mopUpKingsWeight*(14-kingDist)
	return bonus * winner.Sign()
}

func bishopPair(p *board.Position) int {
	score := 0
	if p.PiecesOf(board.White, board.PieceTypeBishop).Count() >= 2 {
		score += BishopPairBonus
	}
	if p.PiecesOf(board.Black, board.PieceTypeBishop).Count() >= 2 {
		score -= BishopPairBonus
	}
	return score
}

// activity sums mobility and king-zone attacks for c's pieces.
func activity(p *board.Position, c board.Color) (mg, eg int) {
	own := p.Occupancy(c)
	occ := p.Occupied()
	enemyKing := p.KingSquare(c.Other())
	zone := board.KingAttacks(enemyKing) | board.SquareBB(enemyKing)
	for _, pt := range [...]board.PieceType{board.PieceTypeKnight, board.PieceTypeBishop, board.PieceTypeRook, board.PieceTypeQueen} {
		for bb := p.PiecesOf(c, pt); bb != 0; {
			sq := bb.PopLSB()
			att := board.Attacks(pt, sq, occ) &^ own
			mob := att.Count()
			hits := (att & zone).Count()
			mg += mob*mobilityMG[pt] + hits*kingAttackMG[pt]
			eg += mob*mobilityEG[pt] + hits*kingAttackEG[pt]
		}
	}
	return mg, eg
}
