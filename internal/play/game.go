// Package play runs a single game on top of a [mines.Board]: it decides when
// the player has won or lost and keeps the board still afterwards.
package play

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Game struct {
	params mines.GameParams
	rnd    *rand.Rand
	board  *mines.Board
	status Status
}

// New starts a game. A nil r falls back to [mines.NewRand].
func New(params mines.GameParams, r *rand.Rand) (*Game, error) {
	if r == nil {
		r = mines.NewRand()
	}
	g := &Game{params: params, rnd: r}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart replaces the board with a fresh one built from the same params.
func (g *Game) Restart() error {
	board, err := mines.NewFromParams(g.params, g.rnd)
	if err != nil {
		return err
	}
	g.board = board
	g.status = Playing
	mines.Log.WithFields(logrus.Fields{
		"seed":  g.params.Seed(),
		"mines": board.MineCount(),
	}).Debug("new board")
	return nil
}

func (g *Game) Board() *mines.Board {
	return g.board
}

func (g *Game) Params() mines.GameParams {
	return g.params
}

func (g *Game) Status() Status {
	return g.status
}

// Reveal opens a cell the way a click would: flagged cells are left alone,
// and opening a mine discloses the whole board.
func (g *Game) Reveal(row, col int) Status {
	if g.status != Playing {
		return g.status
	}
	cell, err := g.board.Cell(row, col)
	if err != nil || cell.Flagged {
		return g.status
	}

	g.board.Reveal(row, col)
	if cell.Mine {
		g.board.RevealAll()
		g.finish(Lost)
		return g.status
	}
	if g.board.CheckVictory() {
		g.finish(Won)
	}
	return g.status
}

func (g *Game) ToggleFlag(row, col int) Status {
	if g.status != Playing {
		return g.status
	}
	g.board.ToggleFlag(row, col)
	if g.board.CheckVictory() {
		g.finish(Won)
	}
	return g.status
}

func (g *Game) finish(s Status) {
	g.status = s
	mines.Log.WithField("status", s.String()).Info("game over")
}
