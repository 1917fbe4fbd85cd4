package engine

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"rotchess/board"
)

func newSearcher(t *testing.T, fen string) *Searcher {
	t.Helper()
	opts := DefaultOptions()
	opts.TTEntries = 1 << 14
	s, err := NewSearcher(mustPosition(t, fen), opts)
	if err != nil {
		t.Fatalf("new searcher: %v", err)
	}
	return s
}

func isLegal(p *board.Position, m board.Move) bool {
	for _, l := range p.GenerateMoves() {
		if l == m {
			return true
		}
	}
	return false
}

func TestMateInOne(t *testing.T) {
	s := newSearcher(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	res := s.SearchDepth(context.Background(), 4)
	if res.Move.String() != "a1a8" {
		t.Fatalf("best move %s, want a1a8", res.Move)
	}
	if got := MovesUntilMate(res.Score); got != 1 {
		t.Fatalf("mate in %d (score %d), want 1", got, res.Score)
	}
}

func TestMateInTwo(t *testing.T) {
	const fen = "7k/8/8/8/8/8/1R6/R3K3 w - - 0 1"
	s := newSearcher(t, fen)
	res := s.SearchDepth(context.Background(), 5)
	if got := MovesUntilMate(res.Score); got != 2 {
		t.Fatalf("mate in %d (score %d, move %s), want 2", got, res.Score, res.Move)
	}
	if !isLegal(s.Position(), res.Move) {
		t.Fatalf("illegal best move %s", res.Move)
	}
	if s.Position().FEN() != fen {
		t.Fatalf("search left the position changed: %s", s.Position().FEN())
	}

	// A second search answers from a populated table and must agree.
	again := s.SearchDepth(context.Background(), 5)
	if again.Score != res.Score {
		t.Fatalf("populated table changed the score: %d vs %d", again.Score, res.Score)
	}
	if !isLegal(s.Position(), again.Move) {
		t.Fatalf("illegal best move %s from populated table", again.Move)
	}
}

func TestBestMoveIndependentOfTableContents(t *testing.T) {
	// 3.Nxh4 wins the stray queen whether or not the table is warm.
	const fen = "rnb1kbnr/pppp1ppp/8/4p3/4P2q/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	s := newSearcher(t, fen)
	ctx := context.Background()

	cold := s.SearchDepth(ctx, 4)
	warm := s.SearchDepth(ctx, 4)
	s.ClearHash()
	cleared := s.SearchDepth(ctx, 4)

	if cold.Move.String() != "f3h4" {
		t.Fatalf("best move %s, want f3h4", cold.Move)
	}
	if warm.Move != cold.Move || cleared.Move != cold.Move {
		t.Fatalf("cold %s, warm %s, cleared %s", cold.Move, warm.Move, cleared.Move)
	}
	if s.Position().FEN() != fen {
		t.Fatalf("search left the position changed: %s", s.Position().FEN())
	}
}

func TestGetsMated(t *testing.T) {
	// Black to move is mated next move whatever it plays.
	s := newSearcher(t, "7k/1R6/8/8/8/8/8/R3K3 b - - 0 1")
	res := s.SearchDepth(context.Background(), 4)
	if got := MovesUntilMate(res.Score); got != -1 {
		t.Fatalf("mated in %d (score %d), want -1", got, res.Score)
	}
}

func TestNoLegalMoves(t *testing.T) {
	s := newSearcher(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	res := s.FindBestMove(context.Background(), time.Second)
	if res.Move != board.NoMove || res.Score != -MateScore {
		t.Fatalf("checkmated: %s", res)
	}

	s = newSearcher(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res = s.FindBestMove(context.Background(), time.Second)
	if res.Move != board.NoMove || res.Score != DrawScore {
		t.Fatalf("stalemate: %s", res)
	}
}

func TestWinsHangingQueen(t *testing.T) {
	s := newSearcher(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	res := s.SearchDepth(context.Background(), 3)
	if res.Move.String() != "d2d5" {
		t.Fatalf("best move %s, want d2d5", res.Move)
	}
	if res.Score < board.RookValue/2 {
		t.Fatalf("score %d after winning a queen", res.Score)
	}
}

func TestFindBestMoveTinyBudget(t *testing.T) {
	s := newSearcher(t, board.StartFEN)
	res := s.FindBestMove(context.Background(), time.Millisecond)
	if !isLegal(s.Position(), res.Move) {
		t.Fatalf("illegal move %s", res.Move)
	}
	if res.Depth < 1 {
		t.Fatalf("depth %d: the first iteration must complete", res.Depth)
	}
	if s.Position().FEN() != board.StartFEN {
		t.Fatal("position not restored")
	}
}

func TestCancelledContextStillReturnsMove(t *testing.T) {
	s := newSearcher(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := s.FindBestMove(ctx, 0)
	if !isLegal(s.Position(), res.Move) {
		t.Fatalf("illegal move %s", res.Move)
	}
}

func TestStopEndsSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	s := newSearcher(t, board.StartFEN)
	go func() {
		time.Sleep(50 * time.Millisecond)
		s.Stop()
	}()
	start := time.Now()
	res := s.FindBestMove(context.Background(), 0)
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("search ignored Stop for %v", elapsed)
	}
	if !isLegal(s.Position(), res.Move) {
		t.Fatalf("illegal move %s", res.Move)
	}
}

func TestSearchLogsIterations(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.TTEntries = 1 << 12
	opts.Logger = log.New(&buf, "", 0)
	s, err := NewSearcher(mustPosition(t, board.StartFEN), opts)
	if err != nil {
		t.Fatal(err)
	}
	s.SearchDepth(context.Background(), 3)
	if n := strings.Count(buf.String(), "info depth"); n != 3 {
		t.Fatalf("logged %d iterations, want 3:\n%s", n, buf.String())
	}
}

func TestLosingSideStillMoves(t *testing.T) {
	s := newSearcher(t, "6k1/8/8/8/8/8/8/r5K1 w - - 0 1")
	res := s.SearchDepth(context.Background(), 4)
	if !isLegal(s.Position(), res.Move) {
		t.Fatalf("illegal move %s", res.Move)
	}
}

func TestNewSearcherRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.TTEntries = 1000
	if _, err := NewSearcher(board.NewPosition(), opts); err == nil {
		t.Fatal("non power of two table accepted")
	}
	opts = DefaultOptions()
	opts.MaxDepth = 0
	if _, err := NewSearcher(board.NewPosition(), opts); err == nil {
		t.Fatal("zero depth accepted")
	}
	opts = DefaultOptions()
	opts.Logger = nil
	if _, err := NewSearcher(board.NewPosition(), opts); err != nil {
		t.Fatalf("nil logger rejected: %v", err)
	}
}

func TestMateScoreHelpers(t *testing.T) {
	tests := []struct {
		score int
		mate  int
	}{
		{MateScore - 1, 1},
		{MateScore - 3, 2},
		{-MateScore + 2, -1},
		{-MateScore + 4, -2},
		{350, 0},
	}
	for _, tc := range tests {
		if got := MovesUntilMate(tc.score); got != tc.mate {
			t.Errorf("MovesUntilMate(%d) = %d, want %d", tc.score, got, tc.mate)
		}
		if IsMateScore(tc.score) != (tc.mate != 0) {
			t.Errorf("IsMateScore(%d)", tc.score)
		}
	}
	if !strings.Contains(Result{Score: MateScore - 3}.String(), "mate 2") {
		t.Fatal("result string lacks mate distance")
	}
}

func TestMoveTime(t *testing.T) {
	start := board.NewPosition()
	if got := MoveTime(start, time.Minute, 0); got != 1500*time.Millisecond {
		t.Fatalf("sudden death budget %v", got)
	}
	want := time.Duration(60000/45+1000) * time.Millisecond
	if got := MoveTime(start, time.Minute, time.Second); got != want {
		t.Fatalf("increment budget %v, want %v", got, want)
	}
	if got := MoveTime(start, 500*time.Millisecond, 100*time.Millisecond); got != 90*time.Millisecond {
		t.Fatalf("low clock budget %v", got)
	}
	if got := MoveTime(start, 10*time.Millisecond, 0); got != minMoveMs*time.Millisecond {
		t.Fatalf("floor %v", got)
	}
	endgame := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if MoveTime(endgame, time.Minute, time.Second) <= want {
		t.Fatal("endgame budget not larger than opening budget")
	}
}
