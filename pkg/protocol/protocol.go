package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statusScore = "SCORE"
	statusFinal = "FINAL"
)

var errBadCommand = errors.New("bad command")

type Engine interface {
	SelectMove(ctx context.Context, params engine.SearchParams) (engine.SearchResult, error)
	Search(ctx context.Context, params engine.SearchParams) (engine.SearchResult, error)
}

// Protocol is the engine side of the game manager handshake.
type Protocol struct {
	name   string
	engine Engine
	limits engine.LimitsType
	logger *zap.SugaredLogger
}

type settings struct {
	color  common.Color
	config engine.SearchConfig
}

func New(name string, eng Engine, limits engine.LimitsType, logger *zap.SugaredLogger) *Protocol {
	return &Protocol{
		name:   name,
		engine: eng,
		limits: limits,
		logger: logger,
	}
}

func (p *Protocol) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	var logger = p.logger.With("game", uuid.NewString())
	var scanner = bufio.NewScanner(r)

	if _, err := fmt.Fprintln(w, p.name); err != nil {
		return err
	}

	var line, err = readLine(scanner)
	if err != nil {
		return err
	}
	s, err := parseSettings(line)
	if err != nil {
		return err
	}
	logger.Infow("search settings",
		"color", s.color,
		"config", s.config.String())
	if s.config.Variant == engine.Minimax && s.config.Ordering {
		logger.Warn("node ordering has no effect on minimax")
	}

	for {
		line, err = readLine(scanner)
		if err != nil {
			return err
		}
		var status, dark, light, err = parseStatus(line)
		if err != nil {
			return err
		}
		if status == statusFinal {
			logger.Infow("game over", "dark", dark, "light", light)
			return nil
		}

		line, err = readLine(scanner)
		if err != nil {
			return err
		}
		board, err := common.ParseBoard(line)
		if err != nil {
			return err
		}
		result, err := p.search(ctx, engine.SearchParams{
			Board:  board,
			Color:  s.color,
			Config: s.config,
			Limits: p.limits,
		})
		if err != nil {
			return err
		}
		logger.Debugw("move selected",
			"move", result.Move,
			"value", result.Value,
			"depth", result.Depth,
			"nodes", result.Nodes,
			"cacheHits", result.CacheHits,
			"cutoffs", result.Cutoffs,
			"time", result.Time)

		if _, err = fmt.Fprintln(w, moveToString(result.Move)); err != nil {
			return err
		}
	}
}

func (p *Protocol) search(ctx context.Context, params engine.SearchParams) (engine.SearchResult, error) {
	if p.limits.MoveTime > 0 || p.limits.Nodes > 0 {
		return p.engine.Search(ctx, params)
	}
	return p.engine.SelectMove(ctx, params)
}

func readLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

// parseSettings reads "color,limit,minimax,caching,ordering".
func parseSettings(line string) (settings, error) {
	var fields = strings.Split(line, ",")
	if len(fields) != 5 {
		return settings{}, fmt.Errorf("%w: settings %q", errBadCommand, line)
	}
	var values [5]int
	for i, field := range fields {
		var v, err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return settings{}, fmt.Errorf("%w: settings %q", errBadCommand, line)
		}
		values[i] = v
	}
	var color, err = common.ParseColor(values[0])
	if err != nil {
		return settings{}, err
	}
	var config = engine.SearchConfig{
		Depth:    values[1],
		Variant:  engine.AlphaBeta,
		Caching:  values[3] == 1,
		Ordering: values[4] == 1,
	}
	if values[2] == 1 {
		config.Variant = engine.Minimax
	}
	if err := config.Validate(); err != nil {
		return settings{}, err
	}
	return settings{color: color, config: config}, nil
}

func formatSettings(color common.Color, config engine.SearchConfig) string {
	return fmt.Sprintf("%d,%d,%d,%d,%d", color, config.Depth,
		boolToInt(config.Variant == engine.Minimax),
		boolToInt(config.Caching),
		boolToInt(config.Ordering))
}

func parseStatus(line string) (status string, dark, light int, err error) {
	var fields = strings.Fields(line)
	if len(fields) != 3 || fields[0] != statusScore && fields[0] != statusFinal {
		return "", 0, 0, fmt.Errorf("%w: status %q", errBadCommand, line)
	}
	dark, err = strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: status %q", errBadCommand, line)
	}
	light, err = strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: status %q", errBadCommand, line)
	}
	return fields[0], dark, light, nil
}

// pass is written as "-1 -1"
func moveToString(m common.Move) string {
	if m == common.MoveEmpty {
		return "-1 -1"
	}
	return fmt.Sprintf("%d %d", m.X(), m.Y())
}

func parseMove(line string) (common.Move, error) {
	var fields = strings.Fields(line)
	if len(fields) != 2 {
		return common.MoveEmpty, fmt.Errorf("%w: move %q", errBadCommand, line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return common.MoveEmpty, fmt.Errorf("%w: move %q", errBadCommand, line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return common.MoveEmpty, fmt.Errorf("%w: move %q", errBadCommand, line)
	}
	if x == -1 && y == -1 {
		return common.MoveEmpty, nil
	}
	if x < 0 || y < 0 || x >= common.MaxSize || y >= common.MaxSize {
		return common.MoveEmpty, fmt.Errorf("%w: %q", common.ErrBadMove, line)
	}
	return common.MakeMove(x, y), nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
