package engine

import (
	"context"
	"errors"
	"time"
)

// Search deepens one ply at a time up to Config.Depth and returns the last
// completed iteration. It stops early when an iteration solved the game,
// when the limits are spent, or when ctx is cancelled after at least one
// iteration. Each iteration gets a fresh cache, since cached values depend
// on the depth limit; params.TransTable is not used.
func (e *Engine) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	var start = time.Now()
	if err := validateParams(&params); err != nil {
		return SearchResult{}, err
	}
	if params.Config.Depth == 0 {
		return e.SelectMove(ctx, params)
	}

	ctx, tm := newSimpleTimeManager(ctx, start, params.Limits)
	defer tm.Close()

	var maxDepth = params.Config.Depth
	if maxDepth == DepthUnlimited {
		maxDepth = stackSize
	}

	var last SearchResult
	var nodes int64
	var completed bool
	for depth := 1; depth <= maxDepth; depth++ {
		var iteration = params
		iteration.Config.Depth = depth
		iteration.TransTable = nil
		var result, err = e.SelectMove(ctx, iteration)
		if err != nil {
			if completed && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				break
			}
			return SearchResult{}, err
		}
		nodes += result.Nodes
		result.Nodes = nodes
		result.Time = time.Since(start)
		last = result
		completed = true
		if params.Progress != nil {
			params.Progress(last)
		}
		if result.Complete || tm.IsDone(nodes) {
			break
		}
	}
	last.Time = time.Since(start)
	return last, nil
}
