package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares with bit n standing for square n.
type Bitboard uint64

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << 8
	Rank3 Bitboard = Rank1 << 16
	Rank4 Bitboard = Rank1 << 24
	Rank5 Bitboard = Rank1 << 32
	Rank6 Bitboard = Rank1 << 40
	Rank7 Bitboard = Rank1 << 48
	Rank8 Bitboard = Rank1 << 56
)

// SquareBB returns the single-square set.
func SquareBB(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

// Count is the population count.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB is the index of the least significant set bit; 64 when empty.
func (b Bitboard) LSB() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// Isolate keeps only the least significant set bit.
func (b Bitboard) Isolate() Bitboard { return b & -b }

// PopLSB removes and returns the least significant square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, b.PopLSB())
	}
	return out
}

// FlipVertical mirrors the board across the horizontal midline (rank 1 <-> rank 8).
func FlipVertical(b Bitboard) Bitboard { return Bitboard(bits.ReverseBytes64(uint64(b))) }

// MirrorHorizontal mirrors the board across the vertical midline (file a <-> file h).
func MirrorHorizontal(b Bitboard) Bitboard {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	x := uint64(b)
	x = ((x >> 1) & k1) | ((x & k1) << 1)
	x = ((x >> 2) & k2) | ((x & k2) << 2)
	x = ((x >> 4) & k4) | ((x & k4) << 4)
	return Bitboard(x)
}

// FlipDiagA1H8 transposes the board about the a1-h8 diagonal:
// the square on (rank r, file f) moves to (rank f, file r).
func FlipDiagA1H8(b Bitboard) Bitboard {
	const (
		k1 = 0x5500550055005500
		k2 = 0x3333000033330000
		k4 = 0x0f0f0f0f00000000
	)
	x := uint64(b)
	t := k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return Bitboard(x)
}

// Rotate90Clockwise turns the board a quarter turn clockwise.
func Rotate90Clockwise(b Bitboard) Bitboard { return FlipVertical(FlipDiagA1H8(b)) }

// Rotate90AntiClockwise turns the board a quarter turn anticlockwise.
func Rotate90AntiClockwise(b Bitboard) Bitboard { return FlipDiagA1H8(FlipVertical(b)) }

func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
