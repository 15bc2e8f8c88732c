package common

func (b *Board) inside(x, y int) bool {
	var n = int(b.size)
	return x >= 0 && y >= 0 && x < n && y < n
}

// flips returns the opponent disks captured by c playing on (x, y).
func (b *Board) flips(c Color, x, y int) uint64 {
	var own = b.PiecesByColor(c)
	var opp = b.PiecesByColor(c.Opponent())
	var result uint64
	for _, d := range directions {
		var line uint64
		var i, j = x + d[0], y + d[1]
		for b.inside(i, j) {
			var mask = SquareMask(MakeSquare(i, j))
			if opp&mask == 0 {
				if own&mask != 0 {
					result |= line
				}
				break
			}
			line |= mask
			i += d[0]
			j += d[1]
		}
	}
	return result
}

// LegalMoves appends the legal moves of c to buffer, column by column.
func (b *Board) LegalMoves(c Color, buffer []Move) []Move {
	var result = buffer[:0]
	var occupied = b.dark | b.light
	for x := 0; x < b.Size(); x++ {
		for y := 0; y < b.Size(); y++ {
			if occupied&SquareMask(MakeSquare(x, y)) != 0 {
				continue
			}
			if b.flips(c, x, y) != 0 {
				result = append(result, MakeMove(x, y))
			}
		}
	}
	return result
}

func (b *Board) HasLegalMove(c Color) bool {
	var buffer [MaxMoves]Move
	return len(b.LegalMoves(c, buffer[:])) != 0
}

func (b *Board) Mobility(c Color) int {
	var buffer [MaxMoves]Move
	return len(b.LegalMoves(c, buffer[:]))
}

// MakeMove returns the successor board. The receiver is never modified.
func (b *Board) MakeMove(c Color, m Move) (Board, bool) {
	if m == MoveEmpty {
		return *b, false
	}
	var x, y = m.X(), m.Y()
	if !b.inside(x, y) {
		return *b, false
	}
	var sq = SquareMask(m.Square())
	if (b.dark|b.light)&sq != 0 {
		return *b, false
	}
	var flipped = b.flips(c, x, y)
	if flipped == 0 {
		return *b, false
	}
	var child = *b
	if c == Dark {
		child.dark |= flipped | sq
		child.light &^= flipped
	} else {
		child.light |= flipped | sq
		child.dark &^= flipped
	}
	return child, true
}

func (b *Board) IsGameOver() bool {
	return !b.HasLegalMove(Dark) && !b.HasLegalMove(Light)
}
