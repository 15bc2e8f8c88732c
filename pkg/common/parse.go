package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoard reads a board literal: a sequence of rows, each a sequence of
// cell values, written with tuples or lists, e.g. ((0, 1), (2, 0)).
func ParseBoard(s string) (Board, error) {
	var rows [][]int
	var depth int
	var token strings.Builder

	var flush = func() error {
		if token.Len() == 0 {
			return nil
		}
		if depth != 2 {
			return fmt.Errorf("%w: value %q outside of a row", ErrBadBoard, token.String())
		}
		var v, err = strconv.Atoi(token.String())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadBoard, err)
		}
		token.Reset()
		rows[len(rows)-1] = append(rows[len(rows)-1], v)
		return nil
	}

	for _, ch := range s {
		switch {
		case ch == '(' || ch == '[':
			if err := flush(); err != nil {
				return Board{}, err
			}
			depth++
			if depth == 2 {
				rows = append(rows, nil)
			} else if depth > 2 {
				return Board{}, fmt.Errorf("%w: nesting too deep", ErrBadBoard)
			}
		case ch == ')' || ch == ']':
			if err := flush(); err != nil {
				return Board{}, err
			}
			depth--
			if depth < 0 {
				return Board{}, fmt.Errorf("%w: unbalanced brackets", ErrBadBoard)
			}
		case ch == ',' || ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			if err := flush(); err != nil {
				return Board{}, err
			}
		case ch >= '0' && ch <= '9' || ch == '-':
			token.WriteRune(ch)
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrBadBoard, ch)
		}
	}
	if depth != 0 || token.Len() != 0 {
		return Board{}, fmt.Errorf("%w: unbalanced brackets", ErrBadBoard)
	}
	return NewBoardFromCells(rows)
}
