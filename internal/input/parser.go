package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/match3/internal/core"
)

// A tick must stay below 1<<63 nanoseconds to fit in a time.Duration.
const maxTickNanos float64 = 1 << 63

var (
	// ErrUnknownCommand is returned for a word the parser does not know.
	ErrUnknownCommand = errors.New("input: unknown command")

	// ErrBadArguments is returned when a command has the wrong arguments.
	ErrBadArguments = errors.New("input: bad arguments")
)

// Parser translates command lines into commands.
// This centralizes the command words and makes them testable.
type Parser struct {
	words map[string]core.Action
}

// NewParser creates a parser with the default command words.
func NewParser() *Parser {
	return &Parser{
		words: map[string]core.Action{
			"select":  core.ActionSelect,
			"s":       core.ActionSelect,
			"pick":    core.ActionSelect,
			"swap":    core.ActionSwap,
			"w":       core.ActionSwap,
			"hint":    core.ActionHint,
			"h":       core.ActionHint,
			"tick":    core.ActionTick,
			"t":       core.ActionTick,
			"show":    core.ActionShow,
			"board":   core.ActionShow,
			"restart": core.ActionRestart,
			"r":       core.ActionRestart,
			"quit":    core.ActionQuit,
			"q":       core.ActionQuit,
			"exit":    core.ActionQuit,
			"help":    core.ActionHelp,
			"?":       core.ActionHelp,
		},
	}
}

// Parse reads one line. A blank line is ActionShow.
func (p *Parser) Parse(line string) (core.Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return core.Command{Action: core.ActionShow}, nil
	}

	action, ok := p.words[fields[0]]
	if !ok {
		return core.Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	cmd := core.Command{Action: action}

	switch action {
	case core.ActionSelect:
		coords, err := parseCoords(args, 1)
		if err != nil {
			return core.Command{}, fmt.Errorf("%s: %w", fields[0], err)
		}
		cmd.Coords = coords
	case core.ActionSwap:
		coords, err := parseCoords(args, 2)
		if err != nil {
			return core.Command{}, fmt.Errorf("%s: %w", fields[0], err)
		}
		cmd.Coords = coords
	case core.ActionTick:
		if len(args) != 1 {
			return core.Command{}, fmt.Errorf("%s: %w: want seconds", fields[0], ErrBadArguments)
		}
		secs, err := strconv.ParseFloat(args[0], 64)
		if err != nil || math.IsNaN(secs) || secs < 0 || secs*float64(time.Second) >= maxTickNanos {
			return core.Command{}, fmt.Errorf("%s: %w: %q is not a duration in seconds", fields[0], ErrBadArguments, args[0])
		}
		cmd.Seconds = secs
	default:
		if len(args) != 0 {
			return core.Command{}, fmt.Errorf("%s: %w: takes no arguments", fields[0], ErrBadArguments)
		}
	}
	return cmd, nil
}

// parseCoords reads n "x y" pairs.
func parseCoords(args []string, n int) ([]core.Coord, error) {
	if len(args) != 2*n {
		return nil, fmt.Errorf("%w: want %d coordinates", ErrBadArguments, 2*n)
	}
	coords := make([]core.Coord, n)
	for i := range coords {
		x, err := strconv.Atoi(args[2*i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadArguments, args[2*i])
		}
		y, err := strconv.Atoi(args[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadArguments, args[2*i+1])
		}
		coords[i] = core.C(x, y)
	}
	return coords, nil
}

// Help lists the commands.
func Help() string {
	return `Commands:
  select X Y         pick a tile; picking an adjacent tile next swaps them
  swap X1 Y1 X2 Y2   swap two adjacent tiles
  hint               show a swap that would match
  tick SECONDS       let time pass on the round clock
  show               redraw the board (or press enter)
  restart            start a new game
  quit               end the game and exit
  help               show this list

Column X counts from the left, row Y from the bottom, both from 0.`
}
