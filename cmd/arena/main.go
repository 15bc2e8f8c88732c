package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ChizhovVadim/CounterOthello/internal/arena"
	"github.com/ChizhovVadim/CounterOthello/internal/bootstrap"
	"github.com/ChizhovVadim/CounterOthello/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
	"go.uber.org/zap"
)

var flgConfig string

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.Parse()

	cfg, err := bootstrap.Setup(flgConfig)
	if err != nil {
		bootstrap.NewLogger(false).Fatalw("failed to setup configuration", zap.Error(err))
	}
	var logger = bootstrap.NewLogger(cfg.Debug)
	defer logger.Sync()

	logger.Infof("%+v", *cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorw("arena failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *bootstrap.Config, logger *zap.SugaredLogger) error {
	variant, err := engine.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}
	var config = engine.SearchConfig{
		Depth:    cfg.Depth,
		Variant:  variant,
		Caching:  cfg.Caching,
		Ordering: cfg.Ordering,
	}
	if err := config.Validate(); err != nil {
		return err
	}
	var limits = engine.LimitsType{MoveTime: cfg.MoveTime}

	playerA, err := newLocalPlayer(cfg.Eval, cfg.Threads, config, limits)
	if err != nil {
		return err
	}
	var playerB arena.Player
	if cfg.EngineB != "" {
		var fields = strings.Fields(cfg.EngineB)
		playerB = &arena.ExternalPlayer{
			Path:   fields[0],
			Args:   fields[1:],
			Config: config,
		}
	} else {
		playerB, err = newLocalPlayer(cfg.EvalB, cfg.Threads, config, limits)
		if err != nil {
			return err
		}
	}

	var a = &arena.Arena{
		PlayerA:      playerA,
		PlayerB:      playerB,
		Size:         cfg.Size,
		OpeningPlies: 2,
		Games:        cfg.Games,
		Concurrency:  cfg.Concurrency,
		Logger:       logger,
	}
	stat, err := a.Run(ctx)
	if err != nil {
		return err
	}
	logger.Infow("arena result",
		"wins", stat.Wins,
		"losses", stat.Losses,
		"draws", stat.Draws,
		"elo", stat.EloDifference)
	return nil
}

func newLocalPlayer(eval string, threads int, config engine.SearchConfig,
	limits engine.LimitsType) (*arena.LocalPlayer, error) {
	if err := evalbuilder.Validate(eval); err != nil {
		return nil, err
	}
	var eng = engine.NewEngine(evalbuilder.Get(eval))
	eng.Threads = threads
	return &arena.LocalPlayer{
		Engine: eng,
		Config: config,
		Limits: limits,
	}, nil
}
