package engine

import (
	"math"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

const (
	// every ply places a disk, so recursion never exceeds the number of squares
	stackSize = common.MaxMoves + 2
)

var valueInfinity = math.Inf(1)

type role int8

const (
	roleMax role = iota
	roleMin
)

func (r role) other() role {
	return 1 - r
}

func (r role) String() string {
	if r == roleMax {
		return "max"
	}
	return "min"
}

func childDepth(depth int) int {
	if depth == DepthUnlimited {
		return depth
	}
	return depth - 1
}
