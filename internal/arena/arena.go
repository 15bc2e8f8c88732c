package arena

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Arena struct {
	PlayerA      Player
	PlayerB      Player
	Size         int
	OpeningPlies int
	Games        int
	Concurrency  int
	Logger       *zap.SugaredLogger
}

type Statistics struct {
	Wins, Losses, Draws int
	GameStatistics
}

func (a *Arena) Run(ctx context.Context) (Statistics, error) {
	var logger = a.Logger
	logger.Infow("arena started",
		"NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"concurrency", a.Concurrency,
		"games", a.Games)
	defer logger.Info("arena finished")

	var openings, err = getOpenings(a.Size, a.OpeningPlies)
	if err != nil {
		return Statistics{}, err
	}
	if len(openings) == 0 {
		return Statistics{}, errors.New("no openings")
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stat Statistics

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, a.Games, gameInfos)
	})

	g.Go(func() error {
		var err error
		stat, err = showResults(ctx, logger, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Statistics{}, err
	}
	return stat, nil
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, a.Logger, a.PlayerA, a.PlayerB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
