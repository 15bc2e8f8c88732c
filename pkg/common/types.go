package common

import (
	"errors"
	"fmt"
)

var (
	ErrBadColor     = errors.New("bad color")
	ErrBadBoardSize = errors.New("bad board size")
	ErrBadBoard     = errors.New("bad board")
	ErrBadMove      = errors.New("bad move")
)

type Color int8

const (
	Empty Color = 0
	Dark  Color = 1
	Light Color = 2
)

func (c Color) Opponent() Color {
	return 3 - c
}

func (c Color) IsValid() bool {
	return c == Dark || c == Light
}

func (c Color) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return "empty"
}

func ParseColor(v int) (Color, error) {
	var c = Color(v)
	if !c.IsValid() {
		return Empty, fmt.Errorf("%w: %v", ErrBadColor, v)
	}
	return c, nil
}

// Move is square index + 1, so the zero value means pass.
type Move int8

const MoveEmpty Move = 0

const MaxMoves = MaxSize * MaxSize

func MakeMove(x, y int) Move {
	return Move(MakeSquare(x, y) + 1)
}

func (m Move) Square() int {
	return int(m) - 1
}

// X is the column.
func (m Move) X() int {
	return File(m.Square())
}

// Y is the row.
func (m Move) Y() int {
	return Rank(m.Square())
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "pass"
	}
	return fmt.Sprintf("%v %v", m.X(), m.Y())
}

type OrderedMove struct {
	Move  Move
	Child Board
	Key   int
}
