package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	material "github.com/ChizhovVadim/CounterOthello/pkg/eval/material"
)

type Evaluator interface {
	Evaluate(b *common.Board, c common.Color) float64
}

type Engine struct {
	Threads     int
	evalBuilder func() interface{}
}

type LimitsType struct {
	MoveTime int // milliseconds
	Nodes    int64
}

type SearchParams struct {
	Board  common.Board
	Color  common.Color
	Config SearchConfig
	Limits LimitsType
	// TransTable is an optional caller owned cache. It must only be shared
	// between searches with the same config and evaluator.
	TransTable *TransTable
	Progress   func(SearchResult)
}

type SearchResult struct {
	Move      common.Move
	Value     float64
	Depth     int
	Nodes     int64
	CacheHits int64
	Cutoffs   int64
	// Complete is set when no node was cut by the depth limit.
	Complete bool
	Time     time.Duration
}

type thread struct {
	evaluator   Evaluator
	color       common.Color
	config      SearchConfig
	transTable  *TransTable
	done        <-chan struct{}
	nodes       int64
	cacheHits   int64
	cutoffs     int64
	depthCutoff bool
	stack       [stackSize]struct {
		moves    [common.MaxMoves]common.Move
		children [common.MaxMoves]common.OrderedMove
	}
}

func NewEngine(evalBuilder func() interface{}) *Engine {
	return &Engine{
		Threads:     1,
		evalBuilder: evalBuilder,
	}
}

// SelectMove picks a move with the package default evaluator (disk
// differential).
func SelectMove(board common.Board, color common.Color, depthLimit int,
	variant Variant, useCaching, useOrdering bool) (common.Move, error) {
	var eng = NewEngine(nil)
	var result, err = eng.SelectMove(context.Background(), SearchParams{
		Board: board,
		Color: color,
		Config: SearchConfig{
			Depth:    depthLimit,
			Variant:  variant,
			Caching:  useCaching,
			Ordering: useOrdering,
		},
	})
	if err != nil {
		return common.MoveEmpty, err
	}
	return result.Move, nil
}

// SelectMove runs one search to the configured depth.
func (e *Engine) SelectMove(ctx context.Context, params SearchParams) (SearchResult, error) {
	var start = time.Now()
	if err := validateParams(&params); err != nil {
		return SearchResult{}, err
	}
	var board = params.Board
	var color = params.Color

	if params.Config.Depth == 0 {
		var evaluator = e.buildEvaluator()
		return SearchResult{
			Move:  common.MoveEmpty,
			Value: evaluator.Evaluate(&board, color),
			Time:  time.Since(start),
		}, nil
	}

	if !board.HasLegalMove(color) {
		var evaluator = e.buildEvaluator()
		return SearchResult{
			Move:     common.MoveEmpty,
			Value:    evaluator.Evaluate(&board, color),
			Complete: true,
			Time:     time.Since(start),
		}, nil
	}

	var result SearchResult
	var err error
	if e.Threads > 1 {
		result, err = e.searchParallel(ctx, &params)
	} else {
		var t = e.newThread(ctx, &params, params.TransTable)
		result, err = t.searchRoot(&board)
	}
	if err != nil {
		if err == errSearchTimeout && ctx.Err() != nil {
			err = ctx.Err()
		}
		return SearchResult{}, err
	}
	result.Depth = params.Config.Depth
	result.Time = time.Since(start)
	return result, nil
}

func validateParams(params *SearchParams) error {
	if err := params.Config.Validate(); err != nil {
		return err
	}
	if !params.Board.IsValid() {
		return fmt.Errorf("%w: %v", common.ErrBadBoardSize, params.Board.Size())
	}
	if !params.Color.IsValid() {
		return fmt.Errorf("%w: %v", common.ErrBadColor, int(params.Color))
	}
	return nil
}

func (e *Engine) newThread(ctx context.Context, params *SearchParams, tt *TransTable) *thread {
	var t = &thread{
		evaluator: e.buildEvaluator(),
		color:     params.Color,
		config:    params.Config,
		done:      ctx.Done(),
	}
	if params.Config.Caching {
		if tt == nil {
			tt = NewTransTable()
		}
		t.transTable = tt
	}
	return t
}

func (t *thread) searchRoot(board *common.Board) (result SearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				err = errSearchTimeout
				return
			}
			panic(r)
		}
	}()
	var move common.Move
	var value float64
	if t.config.Variant == AlphaBeta {
		move, value = t.alphaBeta(board, roleMax, -valueInfinity, valueInfinity, t.config.Depth, 0)
	} else {
		move, value = t.minimax(board, roleMax, t.config.Depth, 0)
	}
	return t.result(move, value), nil
}

func (t *thread) result(move common.Move, value float64) SearchResult {
	return SearchResult{
		Move:      move,
		Value:     value,
		Nodes:     t.nodes,
		CacheHits: t.cacheHits,
		Cutoffs:   t.cutoffs,
		Complete:  !t.depthCutoff,
	}
}

func (t *thread) roleColor(r role) common.Color {
	if r == roleMax {
		return t.color
	}
	return t.color.Opponent()
}

func (t *thread) transKey(board *common.Board, r role, depth int) TransKey {
	return TransKey{
		Board: *board,
		Color: t.roleColor(r),
		Max:   r == roleMax,
		Depth: depth,
	}
}

func (t *thread) evaluate(board *common.Board) float64 {
	return t.evaluator.Evaluate(board, t.color)
}

// incNodes is called once per expanded node and aborts a cancelled search.
func (t *thread) incNodes() {
	t.nodes++
	select {
	case <-t.done:
		panic(errSearchTimeout)
	default:
	}
}

type evaluatorFunc func(b *common.Board, c common.Color) float64

func (f evaluatorFunc) Evaluate(b *common.Board, c common.Color) float64 {
	return f(b, c)
}

func (e *Engine) buildEvaluator() Evaluator {
	if e.evalBuilder == nil {
		return material.NewEvaluationService()
	}
	var evaluationService = e.evalBuilder()
	if ev, ok := evaluationService.(Evaluator); ok {
		return ev
	}
	if f, ok := evaluationService.(func(b *common.Board, c common.Color) float64); ok {
		return evaluatorFunc(f)
	}
	panic(errors.New("bad eval builder"))
}
