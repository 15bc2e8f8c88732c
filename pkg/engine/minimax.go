package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

// minimax returns the best move for the side to move at this node and the
// value of the node for the root color.
func (t *thread) minimax(board *common.Board, r role, depth, height int) (common.Move, float64) {
	if depth == 0 {
		t.depthCutoff = true
		return common.MoveEmpty, t.evaluate(board)
	}

	var key TransKey
	if t.transTable != nil {
		key = t.transKey(board, r, depth)
		if move, value, bound, ok := t.transTable.Read(key); ok && bound == boundExact {
			t.cacheHits++
			return move, value
		}
	}

	var children = t.genChildren(board, t.roleColor(r), height)
	if len(children) == 0 {
		return common.MoveEmpty, t.evaluate(board)
	}
	t.incNodes()

	var bestMove = children[0].Move
	var bestValue = -valueInfinity
	if r == roleMin {
		bestValue = valueInfinity
	}
	for i := range children {
		var _, value = t.minimax(&children[i].Child, r.other(), childDepth(depth), height+1)
		if r == roleMax && value > bestValue ||
			r == roleMin && value < bestValue {
			bestMove = children[i].Move
			bestValue = value
		}
	}

	if t.transTable != nil {
		t.transTable.Update(key, bestMove, bestValue, boundExact)
	}
	return bestMove, bestValue
}
