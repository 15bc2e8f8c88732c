package arena

import (
	"context"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

type opening struct {
	board common.Board
	color common.Color
}

// getOpenings lists the distinct positions reached after plies moves from
// the starting position, in generation order.
func getOpenings(size, plies int) ([]opening, error) {
	var start, err = common.NewBoard(size)
	if err != nil {
		return nil, err
	}
	var current = []opening{{board: start, color: common.Dark}}
	for ply := 0; ply < plies; ply++ {
		var next []opening
		var seen = make(map[common.Board]bool)
		var buffer [common.MaxMoves]common.Move
		for _, o := range current {
			for _, move := range o.board.LegalMoves(o.color, buffer[:]) {
				var child, _ = o.board.MakeMove(o.color, move)
				if seen[child] {
					continue
				}
				seen[child] = true
				next = append(next, opening{board: child, color: o.color.Opponent()})
			}
		}
		if len(next) == 0 {
			break
		}
		current = next
	}
	return current, nil
}

// loadOpenings sends every opening twice with colors swapped until games
// have been scheduled.
func loadOpenings(
	ctx context.Context,
	openings []opening,
	games int,
	gameInfos chan<- gameInfo,
) error {
	for i := 0; i < games; i++ {
		var o = openings[(i/2)%len(openings)]
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{
			opening:       o.board,
			openingColor:  o.color,
			playerAIsDark: i%2 == 0,
			gameNumber:    i + 1,
		}:
		}
	}
	return nil
}
