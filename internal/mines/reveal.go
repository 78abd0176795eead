package mines

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type drainOrder int

const (
	fifo drainOrder = iota
	lifo
)

// Reveal opens the cell at row:col. Opening a cell with no mined neighbors
// spreads through the surrounding zero region. Coordinates outside the board
// are ignored, and flags do not stop the target cell itself from opening.
func (b *Board) Reveal(row, col int) {
	i, err := b.Index(row, col)
	if err != nil {
		return
	}

	b.cells[i].reveal()
	if b.cells[i].AdjacentMines != 0 {
		return
	}

	processed := b.cascade(i, fifo)
	Log.WithFields(logrus.Fields{
		"row":       row,
		"col":       col,
		"processed": count(processed),
	}).Debug("cascade reveal")
}

// cascade floods out from start and returns the set of processed cells.
// Zero cells open and push all of their neighbors; flagged cells stop the
// flood without opening; any other cell opens and stops it. The result does
// not depend on order.
func (b *Board) cascade(start int, order drainOrder) []bool {
	processed := make([]bool, len(b.cells))

	var todo deque.Deque[int]
	todo.PushBack(start)

	for todo.Len() > 0 {
		var i int
		if order == lifo {
			i = todo.PopBack()
		} else {
			i = todo.PopFront()
		}
		if processed[i] {
			continue
		}
		processed[i] = true

		c := &b.cells[i]
		switch {
		case c.AdjacentMines == 0:
			c.reveal()
			row, col := b.Coordinates(i)
			for _, j := range b.Neighbors(row, col) {
				if !processed[j] {
					todo.PushBack(j)
				}
			}
		case c.Flagged:
			// left hidden
		default:
			c.reveal()
		}
	}

	return processed
}

func (b *Board) ToggleFlag(row, col int) {
	i, err := b.Index(row, col)
	if err != nil {
		return
	}
	b.cells[i].toggleFlag()
}

// RevealAll opens every cell regardless of flags.
func (b *Board) RevealAll() {
	for i := range b.cells {
		b.cells[i].reveal()
	}
}

// CheckVictory reports whether every safe cell is open and unflagged and
// every mine is flagged and hidden.
func (b *Board) CheckVictory() bool {
	for _, c := range b.cells {
		if !c.settled() {
			return false
		}
	}
	return true
}

func count(set []bool) (n int) {
	for _, ok := range set {
		if ok {
			n++
		}
	}
	return
}
