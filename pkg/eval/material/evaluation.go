package eval

import (
	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(b *common.Board, c common.Color) float64 {
	return float64(Utility(b, c))
}

// Utility is the disk differential for c.
func Utility(b *common.Board, c common.Color) int {
	var dark, light = b.PieceCounts()
	if c == common.Dark {
		return dark - light
	}
	return light - dark
}
