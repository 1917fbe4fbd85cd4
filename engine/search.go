package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"rotchess/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	Infinity      = 32500
	MateScore     = 32000
	MaxPly        = 128
	MateThreshold = MateScore - MaxPly
	DrawScore     = 0
)

// IsMateScore reports whether score announces a forced mate for either side.
func IsMateScore(score int) bool { return board.Abs(score) >= MateThreshold }

// MovesUntilMate converts a mate score to full moves: positive when the side
// to move mates, negative when it gets mated, zero for ordinary scores.
func MovesUntilMate(score int) int {
	switch {
	case score >= MateThreshold:
		return (MateScore - score + 1) / 2
	case score <= -MateThreshold:
		return -(MateScore + score) / 2
	}
	return 0
}

// Result is the outcome of a search.
type Result struct {
	Move  board.Move
	Score int
	Depth int // last completed iteration
	Nodes uint64
	Time  time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("bestmove %s score %s depth %d nodes %d time %dms",
		r.Move, scoreString(r.Score), r.Depth, r.Nodes, r.Time.Milliseconds())
}

func scoreString(score int) string {
	if IsMateScore(score) {
		return fmt.Sprintf("mate %d", MovesUntilMate(score))
	}
	return fmt.Sprintf("cp %d", score)
}

// Searcher runs iterative-deepening alpha-beta on the position it owns a
// handle to. The position is mutated in place during a search and restored
// before the search returns; only one search may run at a time.
type Searcher struct {
	pos  *board.Position
	eval *Evaluator
	tt   *TransTable
	opts Options

	stop      atomic.Bool
	iteration int
	nodes     uint64
	rootMove  board.Move
	rootScore int
	timer     TimeHandler

	moveBuf [MaxPly + 1][]board.Move
}

// NewSearcher builds a searcher, evaluator and transposition table for pos.
func NewSearcher(pos *board.Position, opts Options) (*Searcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	s := &Searcher{
		pos:  pos,
		eval: NewEvaluator(pos, opts),
		tt:   NewTransTable(opts.TTEntries),
		opts: opts,
	}
	for i := range s.moveBuf {
		s.moveBuf[i] = make([]board.Move, 0, 256)
	}
	return s, nil
}

func (s *Searcher) Position() *board.Position { return s.pos }
func (s *Searcher) Evaluator() *Evaluator     { return s.eval }
func (s *Searcher) TT() *TransTable           { return s.tt }

// ClearHash empties the transposition table.
func (s *Searcher) ClearHash() { s.tt.Clear() }

// Stop asks a running search to unwind. The result of the last completed
// iteration is returned.
func (s *Searcher) Stop() { s.stop.Store(true) }

// FindBestMove searches until budget elapses, ctx is cancelled or the depth
// limit is reached. Depth 1 always completes so a legal move is returned
// whenever one exists; with no legal moves Move is NoMove and Score is the
// mate or stalemate score.
func (s *Searcher) FindBestMove(ctx context.Context, budget time.Duration) Result {
	return s.run(ctx, budget, s.opts.MaxDepth)
}

// SearchDepth searches to a fixed depth with no time limit.
func (s *Searcher) SearchDepth(ctx context.Context, depth int) Result {
	return s.run(ctx, 0, min(depth, MaxPly/2))
}

func (s *Searcher) run(ctx context.Context, budget time.Duration, maxDepth int) Result {
	if s.opts.ClearHashEachSearch {
		s.tt.Clear()
	}
	s.stop.Store(false)
	s.nodes = 0
	s.iteration = 0
	s.timer.StartTime(budget)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	var result Result

	g.Go(func() error {
		defer close(done)
		result = s.iterate(maxDepth)
		return nil
	})
	g.Go(func() error {
		var deadline <-chan time.Time
		if budget > 0 {
			t := time.NewTimer(budget)
			defer t.Stop()
			deadline = t.C
		}
		select {
		case <-done:
		case <-gctx.Done():
			s.stop.Store(true)
		case <-deadline:
			s.stop.Store(true)
		}
		return nil
	})
	_ = g.Wait()
	return result
}

func (s *Searcher) iterate(maxDepth int) Result {
	pos := s.pos
	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		score := DrawScore
		if pos.InCheck() {
			score = -MateScore
		}
		return Result{Move: board.NoMove, Score: score, Time: s.timer.Elapsed()}
	}
	pos.OrderMoves(moves, board.NoMove)
	s.rootMove, s.rootScore = moves[0], 0
	best := Result{Move: moves[0]}

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && s.timer.SoftTimeExceeded() {
			break
		}
		s.iteration = depth
		score := s.search(0, depth, -Infinity, Infinity, true, true)
		if s.stopped() {
			// Nothing completed yet: the partial root result is still a
			// fully searched move.
			if best.Depth == 0 {
				best.Move, best.Score = s.rootMove, s.rootScore
			}
			break
		}
		best = Result{Move: s.rootMove, Score: score, Depth: depth, Nodes: s.nodes, Time: s.timer.Elapsed()}
		s.opts.Logger.Printf("info depth %d score %s nodes %d time %d pv %s",
			depth, scoreString(score), s.nodes, best.Time.Milliseconds(), best.Move)
		if IsMateScore(score) && MateScore-board.Abs(score) <= depth {
			break
		}
	}
	best.Nodes = s.nodes
	best.Time = s.timer.Elapsed()
	return best
}

// stopped is the cooperative cancellation check. The first iteration ignores
// it so a move is always available.
func (s *Searcher) stopped() bool {
	return s.iteration > 1 && s.stop.Load()
}

func (s *Searcher) search(ply, depth, alpha, beta int, isPV, canNull bool) int {
	if s.stopped() {
		return 0
	}
	s.nodes++
	pos := s.pos

	if ply > 0 && (pos.IsRepetition() || pos.HalfmoveClock() >= 100) {
		return DrawScore
	}
	if ply >= MaxPly-1 {
		return s.eval.Evaluate(alpha, beta)
	}

	inCheck := pos.InCheck()
	if inCheck {
		depth++
	}

	hash := pos.Hash()
	ttScore, hint, usable := s.tt.Probe(hash, depth, ply, alpha, beta)
	if usable && ply > 0 {
		return ttScore
	}

	if depth <= 0 {
		return s.qsearch(ply, alpha, beta)
	}

	/* NULL MOVE PRUNING */
	if canNull && !isPV && !inCheck && depth > s.opts.NullMoveMinDepth &&
		pos.TotalMaterial() > s.opts.EndgameMaterial {
		r := s.opts.NullMoveReduction
		if depth > s.opts.NullMoveDeepDepth {
			r = s.opts.NullMoveDeepR
		}
		pos.MakeNullMove()
		score := -s.search(ply+1, depth-1-r, -beta, -beta+1, false, false)
		pos.UnmakeNullMove()
		if s.stopped() {
			return 0
		}
		if score >= beta {
			s.tt.Store(hash, depth, ply, board.NoMove, beta, BetaFlag)
			return beta
		}
	}

	moves := pos.GenerateMovesInto(s.moveBuf[ply][:0], false)
	if len(moves) == 0 {
		score := DrawScore
		if inCheck {
			score = -MateScore + ply
		}
		s.tt.Store(hash, TerminalDepth, ply, board.NoMove, score, ExactFlag)
		return score
	}
	pos.OrderMoves(moves, hint)

	bestMove := board.NoMove
	var flag int8 = AlphaFlag
	for i, m := range moves {
		newDepth := depth - 1
		if s.pushesToPromotion(m) {
			newDepth++
		}

		pos.MakeMove(m)
		var score int
		if i == 0 {
			score = -s.search(ply+1, newDepth, -beta, -alpha, isPV, true)
		} else {
			/* PRINCIPAL VARIATION SEARCH */
			score = -s.search(ply+1, newDepth, -alpha-1, -alpha, false, true)
			if score > alpha && score < beta {
				score = -s.search(ply+1, newDepth, -beta, -alpha, true, true)
			}
		}
		pos.UnmakeMove(m)

		if s.stopped() {
			return 0
		}
		if score >= beta {
			s.tt.Store(hash, depth, ply, m, beta, BetaFlag)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			flag = ExactFlag
			if ply == 0 {
				s.rootMove, s.rootScore = m, score
			}
		}
	}

	s.tt.Store(hash, depth, ply, bestMove, alpha, flag)
	return alpha
}

// pushesToPromotion is true for promotions and pawn pushes to the seventh rank.
func (s *Searcher) pushesToPromotion(m board.Move) bool {
	if m.IsPromotion() {
		return true
	}
	pc := s.pos.PieceAt(m.From())
	if pc.Type() != board.PieceTypePawn {
		return false
	}
	if pc.Color() == board.White {
		return m.To().Rank() == 6
	}
	return m.To().Rank() == 1
}

func (s *Searcher) qsearch(ply, alpha, beta int) int {
	if s.stopped() {
		return 0
	}
	s.nodes++
	pos := s.pos

	standPat := s.eval.Evaluate(alpha, beta)
	if ply >= MaxPly-1 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := pos.GenerateMovesInto(s.moveBuf[ply][:0], true)
	pos.OrderMoves(moves, board.NoMove)
	for _, m := range moves {
		if IsBadCapture(pos, m) {
			continue
		}
		pos.MakeMove(m)
		score := -s.qsearch(ply+1, -beta, -alpha)
		pos.UnmakeMove(m)
		if s.stopped() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
