package mines

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strings"
)

type boardState struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Cell `json:"tiles"`
}

func (b *Board) state() boardState {
	return boardState{Width: b.width, Height: b.height, Tiles: b.Snapshot()}
}

func fromState(s boardState) (*Board, error) {
	if err := validate(s.Width, s.Height, 0); err != nil {
		return nil, err
	}
	if len(s.Tiles) != s.Width*s.Height {
		return nil, fmt.Errorf(
			"%w: %d tiles for %dx%d board",
			ErrInvalidConfiguration, len(s.Tiles), s.Width, s.Height,
		)
	}
	b := &Board{width: s.Width, height: s.Height, cells: s.Tiles}
	for i, c := range b.cells {
		if c.Mine != (c.AdjacentMines == MineSentinel) {
			return nil, fmt.Errorf("%w: tile %d has mine=%t count=%d",
				ErrInvalidConfiguration, i, c.Mine, c.AdjacentMines)
		}
		if c.Mine {
			b.mines++
		}
	}
	for i, c := range b.cells {
		if c.Mine {
			continue
		}
		n := 0
		for _, j := range b.Neighbors(b.Coordinates(i)) {
			if b.cells[j].Mine {
				n++
			}
		}
		if c.AdjacentMines != n {
			return nil, fmt.Errorf("%w: tile %d has count %d, want %d",
				ErrInvalidConfiguration, i, c.AdjacentMines, n)
		}
	}
	return b, nil
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.state())
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var s boardState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := fromState(s)
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

func DecodeBoard(buf []byte) (*Board, error) {
	var s boardState
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return fromState(s)
}

func (b *Board) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(b.state()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String draws the board one row per line, cells separated by spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for i, c := range b.cells {
		sb.WriteString(c.String())
		if (i+1)%b.width == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
