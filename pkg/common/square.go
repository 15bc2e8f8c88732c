package common

import "math/bits"

const (
	MinSize = 4
	MaxSize = 8
)

// Bit layout is fixed to 8 columns for every board size.
func MakeSquare(x, y int) int {
	return y*MaxSize + x
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func SquareMask(sq int) uint64 {
	return uint64(1) << uint(sq)
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

var directions = [...][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
