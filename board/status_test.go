package board_test

import (
	"testing"

	"rotchess/board"
	"rotchess/internal/testutil"
)

var knightShuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8"}

func TestRepetitionKnightShuffle(t *testing.T) {
	p := board.NewPosition()
	testutil.RequireNoError(t, p.ApplyMoves(knightShuffle[:3]...))
	if p.IsRepetition() {
		t.Fatal("repetition reported before the cycle closes")
	}
	testutil.RequireNoError(t, p.ApplyMoves(knightShuffle[3]))
	if !p.IsRepetition() {
		t.Fatal("start position repeated but not detected")
	}
	if p.GameStatus() != board.Repetition {
		t.Fatalf("status = %s", p.GameStatus())
	}
}

func TestRepetitionStopsAtIrreversibleMove(t *testing.T) {
	p := board.NewPosition()
	// The pawn move separates the two occurrences of the knight shuffle.
	testutil.RequireNoError(t, p.ApplyMoves("g1f3", "g8f6", "f3g1", "f6g8", "e2e3"))
	testutil.RequireNoError(t, p.ApplyMoves("g8f6", "g1f3", "f6g8"))
	if p.IsRepetition() {
		t.Fatal("repetition reported before any position recurs after e3")
	}
	testutil.RequireNoError(t, p.ApplyMoves("f3g1"))
	if !p.IsRepetition() {
		t.Fatal("position after e3 repeated but not detected")
	}
}

func TestRepetitionAcrossCastlingRightsChange(t *testing.T) {
	// Ra1-b1-a1 drops queen side rights, so the placement recurs with a
	// different hash and must not count.
	p := mustFEN(t, "r3k3/8/8/8/8/8/8/R3K3 w Qq - 0 1")
	testutil.RequireNoError(t, p.ApplyMoves("a1b1", "a8b8", "b1a1", "b8a8"))
	if p.IsRepetition() {
		t.Fatal("positions with different castling rights counted as repetition")
	}
	testutil.RequireNoError(t, p.ApplyMoves("a1b1", "a8b8", "b1a1", "b8a8"))
	if !p.IsRepetition() {
		t.Fatal("repetition after the rights change not detected")
	}
}

func TestRepetitionAcrossCapture(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/3p4/R3K3 w - - 0 1")
	testutil.RequireNoError(t, p.ApplyMoves("e1d2"))
	if st := p.State(); st.IrreversiblePly != 1 || st.HalfmoveClock != 0 || st.Captured != board.BlackPawn {
		t.Fatalf("state after capture = %+v", st)
	}
	testutil.RequireNoError(t, p.ApplyMoves("e8e7", "d2e1", "e7e8"))
	if p.IsRepetition() {
		t.Fatal("capture resets repetition history")
	}
}

func TestRepetitionIgnoresNullMoveBoundary(t *testing.T) {
	p := board.NewPosition()
	testutil.RequireNoError(t, p.ApplyMoves("g1f3", "g8f6"))
	p.MakeNullMove()
	p.MakeNullMove()
	if p.IsRepetition() {
		t.Fatal("null moves produced a repetition")
	}
	p.UnmakeNullMove()
	p.UnmakeNullMove()
}

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want board.GameStatus
	}{
		{"start", board.StartFEN, board.Ongoing},
		{"white mated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", board.BlackWins},
		{"black mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", board.WhiteWins},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", board.Stalemate},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", board.FiftyMoveDraw},
		{"mate beats fifty moves", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 100 80", board.WhiteWins},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			got := p.GameStatus()
			if got != tc.want {
				t.Fatalf("status = %s, want %s", got, tc.want)
			}
			if got.IsOver() != (tc.want != board.Ongoing) {
				t.Fatal("IsOver disagrees with status")
			}
		})
	}
}
