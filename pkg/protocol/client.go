package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ChizhovVadim/CounterOthello/pkg/common"
	"github.com/ChizhovVadim/CounterOthello/pkg/engine"
)

// Client is the game manager side of the handshake.
type Client struct {
	scanner *bufio.Scanner
	w       io.Writer
	name    string
}

func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

func (c *Client) Name() string {
	return c.name
}

// Start reads the engine name and sends the search settings.
func (c *Client) Start(color common.Color, config engine.SearchConfig) error {
	var name, err = readLine(c.scanner)
	if err != nil {
		return fmt.Errorf("read engine name: %w", err)
	}
	c.name = name
	_, err = fmt.Fprintln(c.w, formatSettings(color, config))
	return err
}

func (c *Client) RequestMove(board common.Board) (common.Move, error) {
	var dark, light = board.PieceCounts()
	if _, err := fmt.Fprintf(c.w, "%s %d %d\n%v\n", statusScore, dark, light, board); err != nil {
		return common.MoveEmpty, err
	}
	var line, err = readLine(c.scanner)
	if err != nil {
		return common.MoveEmpty, fmt.Errorf("read move: %w", err)
	}
	return parseMove(line)
}

func (c *Client) Finish(board common.Board) error {
	var dark, light = board.PieceCounts()
	_, err := fmt.Fprintf(c.w, "%s %d %d\n", statusFinal, dark, light)
	return err
}
