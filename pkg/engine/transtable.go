package engine

import (
	"sync"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

// TransKey identifies a solved node. Depth is the remaining depth, so the
// same board reached at different distances from the horizon does not
// share an entry.
type TransKey struct {
	Board common.Board
	Color common.Color
	Max   bool
	Depth int
}

type transEntry struct {
	move  common.Move
	value float64
	bound uint8
}

// TransTable memoizes search results for one SearchConfig and one
// evaluator. It does not know which config filled it: handing a table to a
// search with a different evaluator returns stale values.
type TransTable struct {
	mu      sync.Mutex
	entries map[TransKey]transEntry
}

func NewTransTable() *TransTable {
	return &TransTable{
		entries: make(map[TransKey]transEntry),
	}
}

func (tt *TransTable) Len() int {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return len(tt.entries)
}

func (tt *TransTable) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.entries = make(map[TransKey]transEntry)
}

func (tt *TransTable) Read(key TransKey) (move common.Move, value float64, bound int, ok bool) {
	tt.mu.Lock()
	var entry, found = tt.entries[key]
	tt.mu.Unlock()
	if !found {
		return
	}
	return entry.move, entry.value, int(entry.bound), true
}

// Update keeps the first exact result for a key. Bounds are replaced, or
// upgraded to an exact value.
func (tt *TransTable) Update(key TransKey, move common.Move, value float64, bound int) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if old, found := tt.entries[key]; found && old.bound == boundExact {
		return
	}
	tt.entries[key] = transEntry{
		move:  move,
		value: value,
		bound: uint8(bound),
	}
}
