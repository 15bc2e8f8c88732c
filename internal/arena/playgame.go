package arena

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func playGame(
	ctx context.Context,
	logger *zap.SugaredLogger,
	playerA, playerB Player,
	info gameInfo,
) (result gameResult, err error) {

	logger = logger.With("game", info.gameNumber, "session", uuid.NewString())
	logger.Debugw("game started")

	var colorA = common.Light
	if info.playerAIsDark {
		colorA = common.Dark
	}
	sessionA, err := playerA.NewGame(ctx, colorA)
	if err != nil {
		return gameResult{}, err
	}
	sessionB, err := playerB.NewGame(ctx, colorA.Opponent())
	if err != nil {
		return gameResult{}, err
	}

	var board = info.opening
	var side = info.openingColor
	var moves []common.Move
	defer func() {
		var errA = sessionA.Close(board)
		var errB = sessionB.Close(board)
		if err == nil {
			if errA != nil {
				err = errA
			} else {
				err = errB
			}
		}
	}()

	for {
		if !board.HasLegalMove(side) {
			if !board.HasLegalMove(side.Opponent()) {
				break
			}
			moves = append(moves, common.MoveEmpty)
			side = side.Opponent()
			continue
		}

		var session = sessionB
		if side == colorA {
			session = sessionA
		}
		move, err := session.SelectMove(ctx, board)
		if err != nil {
			return gameResult{}, err
		}
		child, ok := board.MakeMove(side, move)
		if !ok {
			return gameResult{}, fmt.Errorf("%w: %v plays %v", common.ErrBadMove, side, move)
		}
		moves = append(moves, move)
		board = child
		side = side.Opponent()
	}

	var dark, light = board.PieceCounts()
	logger.Debugw("game finished", "dark", dark, "light", light, "plies", len(moves))
	result = gameResult{
		gameInfo: info,
		board:    board,
		moves:    moves,
		comment:  fmt.Sprintf("%v-%v", dark, light),
		result:   gameResultDraw,
	}
	if dark > light {
		result.result = gameResultDarkWins
	} else if light > dark {
		result.result = gameResultLightWins
	}
	return result, nil
}
