package eval

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	material "github.com/ChizhovVadim/CounterOthello/pkg/eval/material"
)

const (
	cornerBonus   = 10
	cornerPenalty = 5
)

// EvaluationService blends the disk differential with corner control,
// mobility and edge disks.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(b *common.Board, c common.Color) float64 {
	return float64(material.Utility(b, c)+CornerScore(b, c)+EdgeScore(b, c)) +
		float64(b.Mobility(c))/2
}

// CornerScore rewards own corners and penalizes own disks next to a corner
// that c does not hold yet.
func CornerScore(b *common.Board, c common.Color) int {
	var last = b.Size() - 1
	var score = 0
	for _, corner := range [...][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
		var x, y = corner[0], corner[1]
		if b.Cell(x, y) == c {
			score += cornerBonus
			continue
		}
		var dx, dy = step(x), step(y)
		if b.Cell(x+dx, y) == c || b.Cell(x, y+dy) == c || b.Cell(x+dx, y+dy) == c {
			score -= cornerPenalty
		}
	}
	return score
}

func step(v int) int {
	if v == 0 {
		return 1
	}
	return -1
}

// EdgeScore counts own disks on the borders, skipping the two cells
// nearest each corner.
func EdgeScore(b *common.Board, c common.Color) int {
	var last = b.Size() - 1
	var score = 0
	for i := 2; i <= last-2; i++ {
		for _, cell := range [...]common.Color{
			b.Cell(i, 0), b.Cell(i, last), b.Cell(0, i), b.Cell(last, i),
		} {
			if cell == c {
				score++
			}
		}
	}
	return score
}
