package mines

import "strconv"

// MineSentinel is the AdjacentMines value of every mined cell.
const MineSentinel = -1

// Cell is one grid position. Mine and AdjacentMines are fixed when the
// board is built; Revealed only ever goes from false to true.
type Cell struct {
	Mine          bool `json:"bomb"`
	Flagged       bool `json:"flagged"`
	Revealed      bool `json:"visible"`
	AdjacentMines int  `json:"num_bombs"`
}

func (c *Cell) toggleFlag() {
	c.Flagged = !c.Flagged
}

func (c *Cell) reveal() {
	c.Revealed = true
}

// settled reports whether the cell is in its winning state: a safe cell
// opened and unflagged, or a mine flagged and still hidden.
func (c Cell) settled() bool {
	if c.Mine {
		return c.Flagged && !c.Revealed
	}
	return c.Revealed && !c.Flagged
}

func (c Cell) String() string {
	switch {
	case !c.Revealed && c.Flagged:
		return "F"
	case !c.Revealed:
		return "."
	case c.Mine:
		return "*"
	case c.AdjacentMines == 0:
		return " "
	default:
		return strconv.Itoa(c.AdjacentMines)
	}
}
