package arena

import (
	"context"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultDarkWins
	gameResultLightWins
)

// Player starts one session per game.
type Player interface {
	NewGame(ctx context.Context, color common.Color) (Session, error)
}

type Session interface {
	SelectMove(ctx context.Context, board common.Board) (common.Move, error)
	Close(board common.Board) error
}

type gameInfo struct {
	opening       common.Board
	openingColor  common.Color
	playerAIsDark bool
	gameNumber    int
}

type gameResult struct {
	gameInfo gameInfo
	board    common.Board
	moves    []common.Move
	comment  string
	result   int
}
