package arena

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
	"github.com/ChizhovVadim/CounterOthello/pkg/protocol"
)

// LocalPlayer searches in process.
type LocalPlayer struct {
	Engine *engine.Engine
	Config engine.SearchConfig
	Limits engine.LimitsType
}

type localSession struct {
	player *LocalPlayer
	color  common.Color
}

func (p *LocalPlayer) NewGame(ctx context.Context, color common.Color) (Session, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	return &localSession{player: p, color: color}, nil
}

func (s *localSession) SelectMove(ctx context.Context, board common.Board) (common.Move, error) {
	var params = engine.SearchParams{
		Board:  board,
		Color:  s.color,
		Config: s.player.Config,
		Limits: s.player.Limits,
	}
	var result engine.SearchResult
	var err error
	if s.player.Limits.MoveTime > 0 || s.player.Limits.Nodes > 0 {
		result, err = s.player.Engine.Search(ctx, params)
	} else {
		result, err = s.player.Engine.SelectMove(ctx, params)
	}
	if err != nil {
		return common.MoveEmpty, err
	}
	return result.Move, nil
}

func (s *localSession) Close(board common.Board) error {
	return nil
}

// ExternalPlayer runs an engine binary per game and talks to it over the
// game manager protocol.
type ExternalPlayer struct {
	Path   string
	Args   []string
	Config engine.SearchConfig
}

type externalSession struct {
	cmd    *exec.Cmd
	client *protocol.Client
}

func (p *ExternalPlayer) NewGame(ctx context.Context, color common.Color) (Session, error) {
	var cmd = exec.CommandContext(ctx, p.Path, p.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %v: %w", p.Path, err)
	}
	var client = protocol.NewClient(stdout, stdin)
	if err := client.Start(color, p.Config); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, err
	}
	return &externalSession{cmd: cmd, client: client}, nil
}

func (s *externalSession) SelectMove(ctx context.Context, board common.Board) (common.Move, error) {
	return s.client.RequestMove(board)
}

func (s *externalSession) Close(board common.Board) error {
	var err = s.client.Finish(board)
	if waitErr := s.cmd.Wait(); err == nil {
		err = waitErr
	}
	return err
}
