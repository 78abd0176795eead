package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/play"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"r": 2,
	"f": 2,
	"n": 0,
	"q": 0,
	"?": 0,
}

const help = `commands:
  r ROW COL   reveal a cell
  f ROW COL   toggle a flag
  n           new game with the same parameters
  q           quit
  ?           this help`

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func executeCommand(g *play.Game, c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "r", "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		if !g.Board().InBounds(row, col) {
			return errors.New("invalid cell coordinates")
		}
		if g.Status() != play.Playing {
			return errors.New("game is over, press n to start a new one")
		}
		if parts[0] == "r" {
			g.Reveal(row, col)
		} else {
			g.ToggleFlag(row, col)
		}
		return nil
	case "n":
		return g.Restart()
	case "q":
		return errQuit
	case "?":
		return nil
	}
	return errors.New("invalid command")
}
