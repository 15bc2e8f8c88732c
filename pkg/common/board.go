package common

import (
	"fmt"
	"strings"
)

// Board is an immutable position. Two boards with the same cells compare
// equal with == and can be used as map keys.
type Board struct {
	size  int8
	dark  uint64
	light uint64
}

// NewBoard returns the standard starting position.
func NewBoard(size int) (Board, error) {
	if size < MinSize || size > MaxSize || size%2 != 0 {
		return Board{}, fmt.Errorf("%w: %v", ErrBadBoardSize, size)
	}
	var mid = size / 2
	var b = Board{size: int8(size)}
	b.light = SquareMask(MakeSquare(mid-1, mid-1)) | SquareMask(MakeSquare(mid, mid))
	b.dark = SquareMask(MakeSquare(mid, mid-1)) | SquareMask(MakeSquare(mid-1, mid))
	return b, nil
}

// NewBoardFromCells builds a board from rows of cell values (0, 1, 2).
func NewBoardFromCells(rows [][]int) (Board, error) {
	var size = len(rows)
	if size < MinSize || size > MaxSize {
		return Board{}, fmt.Errorf("%w: %v", ErrBadBoardSize, size)
	}
	var b = Board{size: int8(size)}
	for y, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %v has %v cells, want %v",
				ErrBadBoardSize, y, len(row), size)
		}
		for x, cell := range row {
			switch Color(cell) {
			case Empty:
			case Dark:
				b.dark |= SquareMask(MakeSquare(x, y))
			case Light:
				b.light |= SquareMask(MakeSquare(x, y))
			default:
				return Board{}, fmt.Errorf("%w: cell (%v, %v) = %v", ErrBadBoard, x, y, cell)
			}
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return int(b.size)
}

func (b *Board) IsValid() bool {
	return b.size >= MinSize && b.size <= MaxSize
}

func (b *Board) Cell(x, y int) Color {
	var mask = SquareMask(MakeSquare(x, y))
	if b.dark&mask != 0 {
		return Dark
	}
	if b.light&mask != 0 {
		return Light
	}
	return Empty
}

func (b *Board) PiecesByColor(c Color) uint64 {
	if c == Dark {
		return b.dark
	}
	return b.light
}

func (b *Board) PieceCounts() (dark, light int) {
	return PopCount(b.dark), PopCount(b.light)
}

func (b *Board) Cells() [][]int {
	var rows = make([][]int, b.size)
	for y := range rows {
		rows[y] = make([]int, b.size)
		for x := range rows[y] {
			rows[y][x] = int(b.Cell(x, y))
		}
	}
	return rows
}

// String returns the board literal understood by ParseBoard.
func (b Board) String() string {
	var sb = &strings.Builder{}
	sb.WriteString("(")
	for y := 0; y < b.Size(); y++ {
		if y > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for x := 0; x < b.Size(); x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%d", b.Cell(x, y))
		}
		sb.WriteString(")")
	}
	sb.WriteString(")")
	return sb.String()
}
