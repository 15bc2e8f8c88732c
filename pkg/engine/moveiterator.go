package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	material "github.com/ChizhovVadim/CounterOthello/pkg/eval/material"
)

// genChildren returns every legal move of side paired with the board it
// produces. Alpha-beta with ordering sorts the pairs by the static utility
// for side, best first; ties keep generation order.
func (t *thread) genChildren(board *common.Board, side common.Color, height int) []common.OrderedMove {
	var frame = &t.stack[height]
	var ml = board.LegalMoves(side, frame.moves[:])
	var children = frame.children[:len(ml)]
	for i, move := range ml {
		var child, _ = board.MakeMove(side, move)
		children[i] = common.OrderedMove{Move: move, Child: child}
	}
	if t.config.Ordering && t.config.Variant == AlphaBeta {
		for i := range children {
			children[i].Key = material.Utility(&children[i].Child, side)
		}
		sortMoves(children)
	}
	return children
}

// stable insertion sort, descending by key
func sortMoves(moves []common.OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
