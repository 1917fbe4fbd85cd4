package board

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// CenterDistance is the Manhattan distance from sq to the nearest of the four
// central squares.
func CenterDistance(sq Square) int {
	f, r := sq.File(), sq.Rank()
	return max(3-f, f-4) + max(3-r, r-4)
}

// ManhattanDistance is the file plus rank distance between a and b.
func ManhattanDistance(a, b Square) int {
	return Abs(a.File()-b.File()) + Abs(a.Rank()-b.Rank())
}
