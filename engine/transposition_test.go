package engine

import (
	"testing"

	"rotchess/board"
)

func TestTransTableExactHit(t *testing.T) {
	tt := NewTransTable(1 << 4)
	m := board.NewQuietMove(board.E2, board.E4)
	tt.Store(0xABCD, 4, 0, m, 37, ExactFlag)

	score, move, ok := tt.Probe(0xABCD, 4, 0, -Infinity, Infinity)
	if !ok || score != 37 || move != m {
		t.Fatalf("probe = %d %s %v", score, move, ok)
	}
	if _, move, ok := tt.Probe(0xABCD, 5, 0, -Infinity, Infinity); ok || move != m {
		t.Fatalf("shallow entry usable for deeper probe, move %s", move)
	}
	if _, _, ok := tt.Probe(0xABCD+16, 1, 0, -Infinity, Infinity); ok {
		t.Fatal("hit on a different key in the same slot")
	}
}

func TestTransTableBounds(t *testing.T) {
	tt := NewTransTable(1 << 4)
	tt.Store(1, 3, 0, board.NoMove, 50, AlphaFlag)
	if score, _, ok := tt.Probe(1, 3, 0, 60, 100); !ok || score != 60 {
		t.Fatalf("upper bound below alpha: %d %v", score, ok)
	}
	if _, _, ok := tt.Probe(1, 3, 0, 40, 100); ok {
		t.Fatal("upper bound inside the window was usable")
	}
	tt.Store(2, 3, 0, board.NoMove, 150, BetaFlag)
	if score, _, ok := tt.Probe(2, 3, 0, 60, 100); !ok || score != 100 {
		t.Fatalf("lower bound above beta: %d %v", score, ok)
	}
}

func TestTransTableMateDistance(t *testing.T) {
	tt := NewTransTable(1 << 4)
	// Mate found 5 plies from the root while storing at ply 3.
	tt.Store(7, 2, 3, board.NoMove, MateScore-5, ExactFlag)
	if e := tt.entries[7]; int(e.Score) != MateScore-2 {
		t.Fatalf("stored score %d, want %d", e.Score, MateScore-2)
	}
	score, _, ok := tt.Probe(7, 2, 1, -Infinity, Infinity)
	if !ok || score != MateScore-3 {
		t.Fatalf("probe at ply 1 = %d, want %d", score, MateScore-3)
	}
	tt.Store(8, 2, 4, board.NoMove, -MateScore+6, ExactFlag)
	if score, _, _ := tt.Probe(8, 2, 2, -Infinity, Infinity); score != -MateScore+4 {
		t.Fatalf("mated score at ply 2 = %d", score)
	}
}

func TestTransTableReplacement(t *testing.T) {
	tt := NewTransTable(1 << 4)
	m1 := board.NewQuietMove(board.G1, board.F3)
	m2 := board.NewQuietMove(board.B1, board.C3)

	tt.Store(3, 6, 0, m1, 10, ExactFlag)
	tt.Store(3, 2, 0, m2, -20, BetaFlag)
	e := tt.entries[3]
	if e.Depth != 6 || e.Score != 10 || e.Move != m2 {
		t.Fatalf("shallower store on same key: %+v", e)
	}

	tt.Store(3, 2, 0, board.NoMove, 5, ExactFlag)
	if e := tt.entries[3]; e.Depth != 6 || e.Move != m2 {
		t.Fatalf("move lost: %+v", e)
	}

	tt.Store(3+16, 1, 0, m1, 0, AlphaFlag)
	if e := tt.entries[3]; e.Hash != 3+16 || e.Depth != 1 {
		t.Fatalf("different key not replaced: %+v", e)
	}

	tt.Clear()
	if _, move, _ := tt.Probe(3+16, 0, 0, -Infinity, Infinity); move != board.NoMove {
		t.Fatal("clear kept an entry")
	}
}

func TestTransTableTerminalDepth(t *testing.T) {
	tt := NewTransTable(1 << 4)
	tt.Store(9, TerminalDepth, 0, board.NoMove, 0, ExactFlag)
	if _, _, ok := tt.Probe(9, MaxPly, 0, -Infinity, Infinity); !ok {
		t.Fatal("terminal entry not usable at any depth")
	}
}
