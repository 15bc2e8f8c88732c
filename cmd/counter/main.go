package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ChizhovVadim/CounterOthello/internal/bootstrap"
	"github.com/ChizhovVadim/CounterOthello/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
	"github.com/ChizhovVadim/CounterOthello/pkg/protocol"
	"go.uber.org/zap"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgConfig   string
	flgEval     string
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.Parse()

	cfg, err := bootstrap.Setup(flgConfig)
	if err != nil {
		bootstrap.NewLogger(false).Fatalw("failed to setup configuration", zap.Error(err))
	}
	if flgEval != "" {
		cfg.Eval = flgEval
	}

	var logger = bootstrap.NewLogger(cfg.Debug)
	defer logger.Sync()

	logger.Infow(cfg.Name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
		"Eval", cfg.Eval,
		"Threads", cfg.Threads,
	)

	if err := evalbuilder.Validate(cfg.Eval); err != nil {
		logger.Fatalw("bad configuration", zap.Error(err))
	}

	var eng = engine.NewEngine(evalbuilder.Get(cfg.Eval))
	eng.Threads = cfg.Threads

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var p = protocol.New(cfg.Name, eng, engine.LimitsType{MoveTime: cfg.MoveTime}, logger)
	if err := p.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Errorw("protocol stopped", zap.Error(err))
		os.Exit(1)
	}
}
