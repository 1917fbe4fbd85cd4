package engine

import (
	"testing"

	"rotchess/board"
)

func mustPosition(t testing.TB, fen string) *board.Position {
	t.Helper()
	p, err := board.NewPositionFromFEN(fen, nil)
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	return p
}

func mustMove(t testing.TB, p *board.Position, s string) board.Move {
	t.Helper()
	m, err := p.ParseLongAlgebraic(s)
	if err != nil {
		t.Fatalf("parse move: %v", err)
	}
	return m
}

func TestSEE(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"undefended pawn", "6k1/8/8/3p4/8/8/8/3R2K1 w - - 0 1", "d1d5", 100},
		{"queen takes defended pawn", "6k1/8/4p3/3p4/8/8/8/3Q2K1 w - - 0 1", "d1d5", 100 - 900},
		{"bishop for knight then queen recaptures", "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", "c4e6", -10},
		{"x-ray rook joins", "3r2k1/8/8/3p4/8/8/3R4/3R2K1 w - - 0 1", "d2d5", 100},
		{"en passant", "6k1/8/8/3pP3/8/8/8/6K1 w - d6 0 1", "e5d6", 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPosition(t, tc.fen)
			if got := SEE(p, mustMove(t, p, tc.move)); got != tc.want {
				t.Fatalf("SEE(%s) = %d, want %d", tc.move, got, tc.want)
			}
		})
	}
}

func TestIsBadCapture(t *testing.T) {
	p := mustPosition(t, "6k1/8/4p3/3p4/8/8/8/3Q2K1 w - - 0 1")
	if !IsBadCapture(p, mustMove(t, p, "d1d5")) {
		t.Fatal("queen takes defended pawn is not bad")
	}
	p = mustPosition(t, "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1")
	if IsBadCapture(p, mustMove(t, p, "c4e6")) {
		t.Fatal("even bishop for knight trade flagged as bad")
	}
	// Pawn takes a defended queen: the material gain alone decides.
	p = mustPosition(t, "6k1/8/4p3/3q4/4P3/8/8/6K1 w - - 0 1")
	if IsBadCapture(p, mustMove(t, p, "e4d5")) {
		t.Fatal("pawn takes queen flagged as bad")
	}
}
