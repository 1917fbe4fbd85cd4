package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.GenerateMovesInto(make([]Move, 0, 64), false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += Perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range p.GenerateMoves() {
		p.MakeMove(m)
		out[m] = Perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return out
}
