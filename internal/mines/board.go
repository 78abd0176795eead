package mines

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Board is a rectangular minefield stored row-major. It is owned by a single
// caller and is not safe for concurrent use.
type Board struct {
	width, height int
	mines         int
	cells         []Cell
}

// New builds a width x height board with numBombs mines drawn from r.
// A nil r falls back to [NewRand]. Requests for more mines than cells are
// clamped so that every cell is mined.
func New(width, height, numBombs int, r *rand.Rand) (*Board, error) {
	if err := validate(width, height, numBombs); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}

	capacity := width * height
	if numBombs > capacity {
		Log.WithFields(logrus.Fields{
			"requested": numBombs,
			"capacity":  capacity,
		}).Debug("mine count clamped to board capacity")
		numBombs = capacity
	}

	b := &Board{
		width:  width,
		height: height,
		mines:  numBombs,
		cells:  make([]Cell, capacity),
	}
	b.placeMines(numBombs, r)
	b.countAdjacentMines()

	return b, nil
}

func NewFromParams(p GameParams, r *rand.Rand) (*Board, error) {
	w, h, mc := p.Unpack()
	return New(w, h, mc, r)
}

func validate(width, height, numBombs int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfiguration, width, height)
	}
	if height > math.MaxInt/width {
		return fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidConfiguration, width, height)
	}
	if numBombs < 0 {
		return fmt.Errorf("%w: mine count %d", ErrInvalidConfiguration, numBombs)
	}
	return nil
}

// placeMines picks count distinct cells, each remaining candidate being
// equally likely at every draw.
func (b *Board) placeMines(count int, r *rand.Rand) {
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range count {
		i := r.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}
}

func (b *Board) countAdjacentMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].AdjacentMines = MineSentinel
			continue
		}
		row, col := b.Coordinates(i)
		n := 0
		for _, j := range b.Neighbors(row, col) {
			if b.cells[j].Mine {
				n++
			}
		}
		b.cells[i].AdjacentMines = n
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// MineCount is the number of mines actually placed.
func (b *Board) MineCount() int {
	return b.mines
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.height && 0 <= col && col < b.width
}

// Index maps a coordinate pair to its position in the row-major cell slice.
func (b *Board) Index(row, col int) (int, error) {
	if !b.InBounds(row, col) {
		return 0, BoundsError{
			Row: row, Col: col,
			Width: b.width, Height: b.height,
		}
	}
	return row*b.width + col, nil
}

// Coordinates is the inverse of [Board.Index]. i must be in [0, width*height).
func (b *Board) Coordinates(i int) (row, col int) {
	return i / b.width, i % b.width
}

// Neighbors returns the indices of the in-bounds cells surrounding row:col.
func (b *Board) Neighbors(row, col int) []int {
	idxs := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if y, x := row+dy, col+dx; b.InBounds(y, x) {
				idxs = append(idxs, y*b.width+x)
			}
		}
	}
	return idxs
}

func (b *Board) Cell(row, col int) (Cell, error) {
	i, err := b.Index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// Snapshot returns a copy of every cell in row-major order.
func (b *Board) Snapshot() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}
