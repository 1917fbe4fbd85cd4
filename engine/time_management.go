package engine

import (
	"time"

	"rotchess/board"
)

// TimeHandler tracks the wall-clock budget of one search.
type TimeHandler struct {
	start  time.Time
	budget time.Duration // zero means unbounded
}

func (th *TimeHandler) StartTime(budget time.Duration) {
	th.start = time.Now()
	th.budget = budget
}

func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.start) }

// SoftTimeExceeded reports that starting another iteration is unlikely to
// finish: each iteration costs several times the previous one.
func (th *TimeHandler) SoftTimeExceeded() bool {
	return th.budget > 0 && th.Elapsed() > th.budget/2
}

// TimeStatus reports whether the hard budget is spent.
func (th *TimeHandler) TimeStatus() bool {
	return th.budget > 0 && th.Elapsed() >= th.budget
}

// Engine-side safety knobs for clock play.
const (
	overheadMs    = 30
	minMoveMs     = 5
	maxFrac       = 0.7
	panicThreshMs = 1000
	panicFrac     = 0.9
)

// MoveTime derives a per-move budget from a game clock: a share of the
// remaining time based on the moves expected to be left, plus most of the
// increment.
func MoveTime(pos *board.Position, remaining, increment time.Duration) time.Duration {
	rem := int(remaining.Milliseconds())
	inc := int(increment.Milliseconds())
	movesLeft := estimateMovesRemaining(GamePhase(pos))

	var moveTime int
	switch {
	case inc > 0 && rem < panicThreshMs:
		moveTime = int(float64(inc) * panicFrac)
	case inc > 0:
		moveTime = rem/movesLeft + inc
	default:
		moveTime = rem / 40
	}

	moveTime = min(moveTime, int(float64(rem)*maxFrac), rem-overheadMs)
	moveTime = max(moveTime, minMoveMs)
	return time.Duration(moveTime) * time.Millisecond
}

// estimateMovesRemaining goes from 45 in the opening to 20 in bare endgames.
func estimateMovesRemaining(phase int) int {
	return 45 - 25*phase/PhaseScale
}
