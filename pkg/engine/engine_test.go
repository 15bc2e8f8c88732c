package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	material "github.com/ChizhovVadim/CounterOthello/pkg/eval/material"
	positional "github.com/ChizhovVadim/CounterOthello/pkg/eval/positional"
)

type testPosition struct {
	board common.Board
	color common.Color
}

// randomPositions plays seeded random games and records the side to move.
func randomPositions(size, count int, seed int64) []testPosition {
	var rnd = rand.New(rand.NewSource(seed))
	var result []testPosition
	var buffer [common.MaxMoves]common.Move
	for len(result) < count {
		var b, _ = common.NewBoard(size)
		var side = common.Dark
		for !b.IsGameOver() && len(result) < count {
			result = append(result, testPosition{board: b, color: side})
			var ml = b.LegalMoves(side, buffer[:])
			if len(ml) != 0 {
				b, _ = b.MakeMove(side, ml[rnd.Intn(len(ml))])
			}
			side = side.Opponent()
		}
	}
	return result
}

func mustParse(t *testing.T, s string) common.Board {
	t.Helper()
	var b, err = common.ParseBoard(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func search(t *testing.T, eng *Engine, p testPosition, config SearchConfig) SearchResult {
	t.Helper()
	var result, err = eng.SelectMove(context.Background(), SearchParams{
		Board:  p.board,
		Color:  p.color,
		Config: config,
	})
	if err != nil {
		t.Fatalf("SelectMove(%v, %v, %v): %v", p.board, p.color, config, err)
	}
	return result
}

var evaluators = []struct {
	name    string
	builder func() interface{}
}{
	{"utility", func() interface{} { return material.NewEvaluationService() }},
	{"heuristic", func() interface{} { return positional.NewEvaluationService() }},
}

func TestPruningEquivalence(t *testing.T) {
	var positions = randomPositions(6, 24, 1)
	for _, ev := range evaluators {
		var eng = NewEngine(ev.builder)
		for depth := 1; depth <= 3; depth++ {
			t.Run(fmt.Sprintf("%v/depth%v", ev.name, depth), func(t *testing.T) {
				for _, p := range positions {
					var want = search(t, eng, p, SearchConfig{Depth: depth, Variant: Minimax})
					for _, caching := range []bool{false, true} {
						for _, ordering := range []bool{false, true} {
							var config = SearchConfig{Depth: depth, Variant: AlphaBeta,
								Caching: caching, Ordering: ordering}
							var got = search(t, eng, p, config)
							if got.Value != want.Value {
								t.Fatalf("%v on %v: value %v, minimax %v", config, p.board, got.Value, want.Value)
							}
							if !ordering && got.Move != want.Move {
								t.Fatalf("%v on %v: move %v, minimax %v", config, p.board, got.Move, want.Move)
							}
						}
					}
				}
			})
		}
	}
}

func TestPruningEquivalenceUnlimited(t *testing.T) {
	var positions = randomPositions(4, 12, 2)
	var eng = NewEngine(nil)
	for _, p := range positions {
		var want = search(t, eng, p, SearchConfig{Depth: DepthUnlimited, Variant: Minimax, Caching: true})
		if !want.Complete {
			t.Fatalf("unlimited search must be complete")
		}
		var got = search(t, eng, p, SearchConfig{Depth: DepthUnlimited, Variant: AlphaBeta, Ordering: true})
		if got.Value != want.Value {
			t.Fatalf("%v: alphabeta %v, minimax %v", p.board, got.Value, want.Value)
		}
	}
}

func TestOrderingDoesNotChangeValue(t *testing.T) {
	var positions = randomPositions(6, 24, 3)
	var eng = NewEngine(nil)
	for _, p := range positions {
		for _, variant := range []Variant{Minimax, AlphaBeta} {
			var plain = search(t, eng, p, SearchConfig{Depth: 3, Variant: variant})
			var ordered = search(t, eng, p, SearchConfig{Depth: 3, Variant: variant, Ordering: true})
			if plain.Value != ordered.Value {
				t.Fatalf("%v %v: ordered %v, plain %v", variant, p.board, ordered.Value, plain.Value)
			}
			if variant == Minimax && plain.Move != ordered.Move {
				t.Fatalf("ordering must not affect minimax")
			}
		}
	}
}

func TestCachingTransparency(t *testing.T) {
	var positions = randomPositions(6, 24, 4)
	var eng = NewEngine(nil)
	var hits int64
	for _, p := range positions {
		for _, variant := range []Variant{Minimax, AlphaBeta} {
			for _, ordering := range []bool{false, true} {
				var config = SearchConfig{Depth: 4, Variant: variant, Ordering: ordering}
				var plain = search(t, eng, p, config)
				config.Caching = true
				var cached = search(t, eng, p, config)
				if plain.Move != cached.Move || plain.Value != cached.Value {
					t.Fatalf("%v on %v: cached (%v, %v), plain (%v, %v)", config, p.board,
						cached.Move, cached.Value, plain.Move, plain.Value)
				}
				if plain.CacheHits != 0 {
					t.Fatalf("cache hits without a cache")
				}
				hits += cached.CacheHits
			}
		}
	}
	if hits == 0 {
		t.Error("expected transpositions to hit the cache")
	}
}

func TestDepthZero(t *testing.T) {
	var positions = randomPositions(8, 10, 5)
	for _, ev := range evaluators {
		var eng = NewEngine(ev.builder)
		var evaluator = eng.buildEvaluator()
		for _, p := range positions {
			for _, variant := range []Variant{Minimax, AlphaBeta} {
				var result = search(t, eng, p, SearchConfig{Depth: 0, Variant: variant, Caching: true})
				var want = evaluator.Evaluate(&p.board, p.color)
				if result.Value != want || result.Move != common.MoveEmpty || result.Nodes != 0 {
					t.Fatalf("%v: got (%v, %v, nodes %v), want value %v",
						ev.name, result.Move, result.Value, result.Nodes, want)
				}
			}
		}
	}
}

func TestNoMoveTerminal(t *testing.T) {
	// dark cannot outflank the light corner, light can play (2, 0)
	var p = testPosition{
		board: mustParse(t, "((2,1,0,0),(0,0,0,0),(0,0,0,0),(0,0,0,0))"),
		color: common.Dark,
	}
	var eng = NewEngine(nil)
	for _, depth := range []int{1, 3, DepthUnlimited} {
		for _, variant := range []Variant{Minimax, AlphaBeta} {
			var result = search(t, eng, p, SearchConfig{Depth: depth, Variant: variant, Caching: true, Ordering: true})
			if result.Move != common.MoveEmpty {
				t.Errorf("depth %v %v: move %v, want pass", depth, variant, result.Move)
			}
			if want := float64(material.Utility(&p.board, p.color)); result.Value != want {
				t.Errorf("depth %v %v: value %v, want %v", depth, variant, result.Value, want)
			}
			if result.Nodes != 0 {
				t.Errorf("depth %v %v: %v nodes expanded", depth, variant, result.Nodes)
			}
		}
	}
	var move, err = SelectMove(p.board, p.color, 2, AlphaBeta, false, false)
	if err != nil || move != common.MoveEmpty {
		t.Errorf("SelectMove() = %v, %v", move, err)
	}
}

func TestDeterminism(t *testing.T) {
	var positions = randomPositions(8, 6, 6)
	var eng = NewEngine(func() interface{} { return positional.NewEvaluationService() })
	for _, p := range positions {
		for _, variant := range []Variant{Minimax, AlphaBeta} {
			var config = SearchConfig{Depth: 3, Variant: variant, Caching: true, Ordering: true}
			var first = search(t, eng, p, config)
			for i := 0; i < 3; i++ {
				if again := search(t, eng, p, config); again.Move != first.Move || again.Value != first.Value {
					t.Fatalf("run %v: (%v, %v), first (%v, %v)", i, again.Move, again.Value, first.Move, first.Value)
				}
			}
		}
	}
}

func TestThreeCandidatesScenario(t *testing.T) {
	// dark has exactly three moves: (0, 1), (2, 3), (3, 2)
	var board = mustParse(t, "((2,1,0,0),(0,2,1,0),(0,1,2,0),(0,0,0,0))")
	var values = make(map[common.Board]float64)
	for move, value := range map[common.Move]float64{
		common.MakeMove(0, 1): 2,
		common.MakeMove(2, 3): -1,
		common.MakeMove(3, 2): 3,
	} {
		var child, ok = board.MakeMove(common.Dark, move)
		if !ok {
			t.Fatalf("move %v is illegal", move)
		}
		values[child] = value
	}
	var eng = NewEngine(func() interface{} {
		return func(b *common.Board, c common.Color) float64 {
			return values[*b]
		}
	})
	for _, variant := range []Variant{Minimax, AlphaBeta} {
		for _, caching := range []bool{false, true} {
			for _, ordering := range []bool{false, true} {
				var config = SearchConfig{Depth: 1, Variant: variant, Caching: caching, Ordering: ordering}
				var result = search(t, eng, testPosition{board: board, color: common.Dark}, config)
				if result.Move != common.MakeMove(3, 2) || result.Value != 3 {
					t.Errorf("%v: (%v, %v), want (3 2, 3)", config, result.Move, result.Value)
				}
			}
		}
	}
}

func TestFirstMoveWinsTies(t *testing.T) {
	// utilities after each dark move: (0,3) 5, (1,3) 3, (2,3) 5, (3,3) 3
	var board = mustParse(t, "((0,0,0,0),(1,1,1,0),(2,2,2,0),(0,0,0,0))")
	for _, variant := range []Variant{Minimax, AlphaBeta} {
		var move, err = SelectMove(board, common.Dark, 1, variant, true, true)
		if err != nil {
			t.Fatal(err)
		}
		if move != common.MakeMove(0, 3) {
			t.Errorf("%v: move %v, want 0 3", variant, move)
		}
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	var positions = randomPositions(6, 12, 7)
	var eng = NewEngine(nil)
	var minimaxNodes, alphaBetaNodes, cutoffs int64
	for _, p := range positions {
		var mm = search(t, eng, p, SearchConfig{Depth: 4, Variant: Minimax})
		var ab = search(t, eng, p, SearchConfig{Depth: 4, Variant: AlphaBeta})
		if ab.Nodes > mm.Nodes {
			t.Fatalf("alphabeta expanded %v nodes, minimax %v", ab.Nodes, mm.Nodes)
		}
		minimaxNodes += mm.Nodes
		alphaBetaNodes += ab.Nodes
		cutoffs += ab.Cutoffs
	}
	if cutoffs == 0 || alphaBetaNodes >= minimaxNodes {
		t.Errorf("no pruning: alphabeta %v nodes, minimax %v, cutoffs %v",
			alphaBetaNodes, minimaxNodes, cutoffs)
	}
}

func TestBadParams(t *testing.T) {
	var start, _ = common.NewBoard(8)
	tests := []struct {
		name   string
		params SearchParams
		want   error
	}{
		{"negative depth", SearchParams{Board: start, Color: common.Dark, Config: SearchConfig{Depth: -2}}, ErrBadDepth},
		{"variant", SearchParams{Board: start, Color: common.Dark, Config: SearchConfig{Depth: 2, Variant: Variant(7)}}, ErrBadVariant},
		{"board", SearchParams{Color: common.Dark, Config: SearchConfig{Depth: 2}}, common.ErrBadBoardSize},
		{"color", SearchParams{Board: start, Color: common.Empty, Config: SearchConfig{Depth: 2}}, common.ErrBadColor},
	}
	var eng = NewEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := eng.SelectMove(context.Background(), tt.params); !errors.Is(err, tt.want) {
				t.Errorf("SelectMove() error = %v, want %v", err, tt.want)
			}
			if _, err := eng.Search(context.Background(), tt.params); !errors.Is(err, tt.want) {
				t.Errorf("Search() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCancelledSearch(t *testing.T) {
	var start, _ = common.NewBoard(8)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	for _, threads := range []int{1, 4} {
		var eng = NewEngine(nil)
		eng.Threads = threads
		var _, err = eng.SelectMove(ctx, SearchParams{
			Board:  start,
			Color:  common.Dark,
			Config: SearchConfig{Depth: 8, Variant: AlphaBeta},
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("threads %v: error = %v, want context.Canceled", threads, err)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	var positions = randomPositions(6, 16, 8)
	var sequential = NewEngine(nil)
	var parallel = NewEngine(nil)
	parallel.Threads = 4
	for _, p := range positions {
		for _, variant := range []Variant{Minimax, AlphaBeta} {
			for _, caching := range []bool{false, true} {
				var config = SearchConfig{Depth: 3, Variant: variant, Caching: caching}
				var want = search(t, sequential, p, config)
				var got = search(t, parallel, p, config)
				if got.Move != want.Move || got.Value != want.Value {
					t.Fatalf("%v on %v: parallel (%v, %v), sequential (%v, %v)",
						config, p.board, got.Move, got.Value, want.Move, want.Value)
				}
			}
		}
	}
}

func TestIterativeDeepening(t *testing.T) {
	var positions = randomPositions(6, 6, 9)
	var eng = NewEngine(nil)
	for _, p := range positions {
		var config = SearchConfig{Depth: 3, Variant: AlphaBeta, Caching: true, Ordering: true}
		var want = search(t, eng, p, config)
		var iterations []int
		var got, err = eng.Search(context.Background(), SearchParams{
			Board:    p.board,
			Color:    p.color,
			Config:   config,
			Progress: func(si SearchResult) { iterations = append(iterations, si.Depth) },
		})
		if err != nil {
			t.Fatal(err)
		}
		if got.Value != want.Value || got.Move != want.Move {
			t.Fatalf("Search() = (%v, %v), SelectMove() = (%v, %v)", got.Move, got.Value, want.Move, want.Value)
		}
		if want.Complete {
			continue
		}
		if got.Depth != 3 || len(iterations) != 3 {
			t.Fatalf("depth %v, iterations %v", got.Depth, iterations)
		}
	}
}

func TestIterativeDeepeningSolvesGame(t *testing.T) {
	var p = randomPositions(4, 3, 10)[2]
	var eng = NewEngine(nil)
	var want = search(t, eng, p, SearchConfig{Depth: DepthUnlimited, Variant: Minimax, Caching: true})
	var got, err = eng.Search(context.Background(), SearchParams{
		Board:  p.board,
		Color:  p.color,
		Config: SearchConfig{Depth: DepthUnlimited, Variant: AlphaBeta, Caching: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Complete || got.Value != want.Value {
		t.Errorf("Search() = (%v, complete %v), want %v", got.Value, got.Complete, want.Value)
	}
}

func TestIterativeDeepeningCancelled(t *testing.T) {
	var start, _ = common.NewBoard(8)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var _, err = NewEngine(nil).Search(ctx, SearchParams{
		Board:  start,
		Color:  common.Dark,
		Config: SearchConfig{Depth: 6, Variant: AlphaBeta},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestIterativeDeepeningMoveTime(t *testing.T) {
	var start, _ = common.NewBoard(8)
	var result, err = NewEngine(nil).Search(context.Background(), SearchParams{
		Board:  start,
		Color:  common.Dark,
		Config: SearchConfig{Depth: DepthUnlimited, Variant: AlphaBeta, Caching: true, Ordering: true},
		Limits: LimitsType{MoveTime: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Depth < 1 || result.Move == common.MoveEmpty {
		t.Errorf("Search() = %+v", result)
	}
}

// A table only answers for the evaluator that filled it. Reusing it with
// another evaluator is the caller's mistake and silently returns the old
// values.
func TestTransTableReuseAcrossEvaluators(t *testing.T) {
	var heuristic = NewEngine(func() interface{} { return positional.NewEvaluationService() })
	var utility = NewEngine(nil)
	var config = SearchConfig{Depth: 2, Variant: AlphaBeta, Caching: true}
	for _, p := range randomPositions(8, 20, 11) {
		if !p.board.HasLegalMove(p.color) {
			continue
		}
		var fresh = search(t, utility, p, config)
		var tt = NewTransTable()
		var filled, err = heuristic.SelectMove(context.Background(), SearchParams{
			Board: p.board, Color: p.color, Config: config, TransTable: tt,
		})
		if err != nil {
			t.Fatal(err)
		}
		if filled.Value == fresh.Value {
			continue
		}
		stale, err := utility.SelectMove(context.Background(), SearchParams{
			Board: p.board, Color: p.color, Config: config, TransTable: tt,
		})
		if err != nil {
			t.Fatal(err)
		}
		if stale.Value != filled.Value || stale.Value == fresh.Value {
			t.Fatalf("stale %v, filled %v, fresh %v", stale.Value, filled.Value, fresh.Value)
		}
		return
	}
	t.Fatal("no position separates the evaluators")
}

func TestTransTable(t *testing.T) {
	var board, _ = common.NewBoard(4)
	var key = TransKey{Board: board, Color: common.Dark, Max: true, Depth: 3}
	var tt = NewTransTable()
	if _, _, _, ok := tt.Read(key); ok {
		t.Fatal("empty table hit")
	}
	tt.Update(key, common.MakeMove(0, 1), 2, boundLower)
	tt.Update(key, common.MakeMove(1, 0), 4, boundExact)
	tt.Update(key, common.MakeMove(2, 3), 6, boundExact)
	var move, value, bound, ok = tt.Read(key)
	if !ok || move != common.MakeMove(1, 0) || value != 4 || bound != boundExact {
		t.Errorf("Read() = %v, %v, %v, %v", move, value, bound, ok)
	}
	var other = key
	other.Max = false
	other.Color = common.Light
	if _, _, _, ok := tt.Read(other); ok {
		t.Error("min entry answered by max entry")
	}
	if tt.Len() != 1 {
		t.Errorf("Len() = %v", tt.Len())
	}
	tt.Clear()
	if tt.Len() != 0 {
		t.Errorf("Len() after Clear = %v", tt.Len())
	}
}

func TestSortMovesIsStable(t *testing.T) {
	var ml = []common.OrderedMove{
		{Move: 1, Key: 0}, {Move: 2, Key: 3}, {Move: 3, Key: 0}, {Move: 4, Key: 3}, {Move: 5, Key: -2},
	}
	sortMoves(ml)
	var want = []common.Move{2, 4, 1, 3, 5}
	for i := range ml {
		if ml[i].Move != want[i] {
			t.Fatalf("sortMoves() = %v", ml)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for s, want := range map[string]Variant{"minimax": Minimax, "AlphaBeta": AlphaBeta, "ab": AlphaBeta} {
		if got, err := ParseVariant(s); err != nil || got != want {
			t.Errorf("ParseVariant(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseVariant("mcts"); !errors.Is(err, ErrBadVariant) {
		t.Errorf("ParseVariant(mcts) error = %v", err)
	}
}
