package board

// GameStatus is the outcome of the game at the current position.
type GameStatus uint8

const (
	Ongoing GameStatus = iota
	WhiteWins
	BlackWins
	Stalemate
	Repetition
	FiftyMoveDraw
)

func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "draw by repetition"
	case FiftyMoveDraw:
		return "draw by fifty-move rule"
	}
	return "unknown"
}

// IsOver reports whether the status is terminal.
func (s GameStatus) IsOver() bool { return s != Ongoing }

// GameStatus classifies the current position. Mate and stalemate take
// precedence over the draw rules.
func (p *Position) GameStatus() GameStatus {
	if len(p.GenerateMoves()) == 0 {
		if !p.InCheck() {
			return Stalemate
		}
		if p.sideToMove == White {
			return BlackWins
		}
		return WhiteWins
	}
	if p.IsRepetition() {
		return Repetition
	}
	if p.state().HalfmoveClock >= 100 {
		return FiftyMoveDraw
	}
	return Ongoing
}
