package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds          = errors.New("cell out of bounds")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
)

// BoundsError reports a coordinate pair that does not address a cell.
// It matches [ErrOutOfBounds] under [errors.Is].
type BoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e BoundsError) Error() string {
	return fmt.Sprintf(
		"cell %d:%d out of bounds for %dx%d board",
		e.Row, e.Col, e.Width, e.Height,
	)
}

func (e BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
