package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadDepth   = errors.New("bad depth limit")
	ErrBadVariant = errors.New("bad search variant")
)

// DepthUnlimited searches until the game ends.
const DepthUnlimited = -1

type Variant int

const (
	Minimax Variant = iota
	AlphaBeta
)

func (v Variant) String() string {
	switch v {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadVariant, s)
}

// SearchConfig must not change during one search. Caches filled under one
// config must not be handed to a search with another evaluator or config.
type SearchConfig struct {
	Depth    int
	Variant  Variant
	Caching  bool
	Ordering bool
}

func (c SearchConfig) Validate() error {
	if c.Depth < DepthUnlimited {
		return fmt.Errorf("%w: %v", ErrBadDepth, c.Depth)
	}
	if c.Variant != Minimax && c.Variant != AlphaBeta {
		return fmt.Errorf("%w: %v", ErrBadVariant, int(c.Variant))
	}
	return nil
}

func (c SearchConfig) String() string {
	var depth = fmt.Sprint(c.Depth)
	if c.Depth == DepthUnlimited {
		depth = "unlimited"
	}
	return fmt.Sprintf("%v depth=%v caching=%v ordering=%v",
		c.Variant, depth, c.Caching, c.Ordering)
}
