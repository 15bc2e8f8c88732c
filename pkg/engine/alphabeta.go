package engine

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

// alphaBeta is fail-soft. Within (alpha, beta) the value is exact; outside
// it is a bound, and the cache records which.
func (t *thread) alphaBeta(board *common.Board, r role, alpha, beta float64, depth, height int) (common.Move, float64) {
	if depth == 0 {
		t.depthCutoff = true
		return common.MoveEmpty, t.evaluate(board)
	}

	var key TransKey
	if t.transTable != nil {
		key = t.transKey(board, r, depth)
		if move, value, bound, ok := t.transTable.Read(key); ok {
			if bound == boundExact ||
				value >= beta && (bound&boundLower) != 0 ||
				value <= alpha && (bound&boundUpper) != 0 {
				t.cacheHits++
				return move, value
			}
		}
	}

	var children = t.genChildren(board, t.roleColor(r), height)
	if len(children) == 0 {
		return common.MoveEmpty, t.evaluate(board)
	}
	t.incNodes()

	var oldAlpha, oldBeta = alpha, beta
	var bestMove = children[0].Move
	var bestValue = -valueInfinity
	if r == roleMin {
		bestValue = valueInfinity
	}
	for i := range children {
		var _, value = t.alphaBeta(&children[i].Child, r.other(), alpha, beta, childDepth(depth), height+1)
		if r == roleMax {
			if value > bestValue {
				bestMove = children[i].Move
				bestValue = value
			}
			if bestValue > alpha {
				alpha = bestValue
			}
		} else {
			if value < bestValue {
				bestMove = children[i].Move
				bestValue = value
			}
			if bestValue < beta {
				beta = bestValue
			}
		}
		if beta <= alpha {
			if i+1 < len(children) {
				t.cutoffs++
			}
			break
		}
	}

	if t.transTable != nil {
		var bound = boundExact
		if bestValue <= oldAlpha {
			bound = boundUpper
		} else if bestValue >= oldBeta {
			bound = boundLower
		}
		t.transTable.Update(key, bestMove, bestValue, bound)
	}
	return bestMove, bestValue
}
