package board_test

import (
	"testing"

	"rotchess/board"
)

func benchPerft(b *testing.B, fen string, depth int) {
	p, err := board.NewPositionFromFEN(fen, nil)
	if err != nil {
		b.Fatalf("parse FEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Perft(p, depth)
	}
}

func BenchmarkPerftStartDepth4(b *testing.B)    { benchPerft(b, board.StartFEN, 4) }
func BenchmarkPerftKiwipeteDepth3(b *testing.B) { benchPerft(b, perftCases[1].fen, 3) }

func BenchmarkGenerateMoves(b *testing.B) {
	p, err := board.NewPositionFromFEN(perftCases[1].fen, nil)
	if err != nil {
		b.Fatalf("parse FEN: %v", err)
	}
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.GenerateMovesInto(buf[:0], false)
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	p, err := board.NewPositionFromFEN(perftCases[1].fen, nil)
	if err != nil {
		b.Fatalf("parse FEN: %v", err)
	}
	moves := p.GenerateMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		p.MakeMove(m)
		p.UnmakeMove(m)
	}
}
