package engine

import (
	"context"
	"errors"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"golang.org/x/sync/errgroup"
)

var errSearchTimeout = errors.New("search timeout")

// searchParallel searches every root move in its own goroutine with a full
// window and combines the results in root order, so move and value match
// the sequential search.
func (e *Engine) searchParallel(ctx context.Context, params *SearchParams) (SearchResult, error) {
	var board = params.Board
	var root = e.newThread(ctx, params, params.TransTable)
	var children = cloneMoves(root.genChildren(&board, params.Color, 0))
	var results = make([]SearchResult, len(children))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Threads)
	for i := range children {
		i := i
		g.Go(func() (err error) {
			// without a shared table every worker owns a private cache
			var t = e.newThread(ctx, params, params.TransTable)
			defer func() {
				if r := recover(); r != nil {
					if r == errSearchTimeout {
						err = errSearchTimeout
						return
					}
					panic(r)
				}
			}()
			var child = children[i].Child
			var value float64
			if params.Config.Variant == AlphaBeta {
				_, value = t.alphaBeta(&child, roleMin, -valueInfinity, valueInfinity,
					childDepth(params.Config.Depth), 1)
			} else {
				_, value = t.minimax(&child, roleMin, childDepth(params.Config.Depth), 1)
			}
			results[i] = t.result(children[i].Move, value)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	var best = SearchResult{
		Move:     children[0].Move,
		Value:    -valueInfinity,
		Nodes:    1,
		Complete: true,
	}
	for i := range results {
		var r = &results[i]
		if r.Value > best.Value {
			best.Move = r.Move
			best.Value = r.Value
		}
		best.Nodes += r.Nodes
		best.CacheHits += r.CacheHits
		best.Cutoffs += r.Cutoffs
		best.Complete = best.Complete && r.Complete
	}
	return best, nil
}

func cloneMoves(ml []common.OrderedMove) []common.OrderedMove {
	var result = make([]common.OrderedMove, len(ml))
	copy(result, ml)
	return result
}
