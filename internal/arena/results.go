package arena

import (
	"context"
	"math"

	"go.uber.org/zap"
)

func showResults(
	ctx context.Context,
	logger *zap.SugaredLogger,
	gameResults <-chan gameResult,
) (Statistics, error) {
	var games = 0
	var stat Statistics
	for gameResult := range gameResults {
		games++
		logger.Infow("finished game",
			"game", gameResult.gameInfo.gameNumber,
			"result", gameResultString(gameResult.result),
			"score", gameResult.comment,
			"plies", len(gameResult.moves))
		if gameResult.result == gameResultDraw {
			stat.Draws++
		} else if gameResult.result == gameResultDarkWins && gameResult.gameInfo.playerAIsDark ||
			gameResult.result == gameResultLightWins && !gameResult.gameInfo.playerAIsDark {
			stat.Wins++
		} else {
			stat.Losses++
		}
		stat.GameStatistics = computeStat(stat.Wins, stat.Losses, stat.Draws)
		logger.Infof("Score: %v - %v - %v  [%.3f] %v",
			stat.Wins, stat.Losses, stat.Draws, stat.WinningFraction, games)
		logger.Infof("Elo difference: %.1f, LOS: %.1f %%",
			stat.EloDifference, stat.Los*100)
	}
	return stat, ctx.Err()
}

type GameStatistics struct {
	WinningFraction float64
	EloDifference   float64
	Los             float64
}

// https://chessprogramming.wikispaces.com/Match%20Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		WinningFraction: winningFraction,
		EloDifference:   eloDifference,
		Los:             los,
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultDarkWins:
		return "1-0"
	case gameResultLightWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
