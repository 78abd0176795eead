package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var DefaultGame = mines.GameParams{Width: 9, Height: 9, MineCount: 10}

// NewGame reads MINES_WIDTH, MINES_HEIGHT and MINES_COUNT, falling back to
// [DefaultGame] for any that are unset.
func NewGame() (*mines.GameParams, error) {
	width, err := lookupInt("MINES_WIDTH", DefaultGame.Width)
	if err != nil {
		return nil, err
	}

	height, err := lookupInt("MINES_HEIGHT", DefaultGame.Height)
	if err != nil {
		return nil, err
	}

	mineCount, err := lookupInt("MINES_COUNT", DefaultGame.MineCount)
	if err != nil {
		return nil, err
	}

	params := &mines.GameParams{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// Seed returns MINES_SEED when set, for reproducible boards.
func Seed() (seed uint64, ok bool, err error) {
	s, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("unable to parse MINES_SEED: %w", err)
	}
	return seed, true, nil
}
