package mines

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
)

// GameParams are the three generation parameters of a board.
type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	return validate(p.Width, p.Height, p.MineCount)
}

// Seed encodes the params as "width:height:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	if strings.Count(seed, ":") != 2 {
		return nil, fmt.Errorf("%w: malformed seed %q", ErrInvalidConfiguration, seed)
	}
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			"%w: malformed seed %q (n = %d, err = %v)",
			ErrInvalidConfiguration, seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type gameParamsDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

// ParseGameParams decodes width, height and mine_count from form-style
// values such as url.Values. Unknown keys are ignored.
func ParseGameParams(src map[string][]string) (GameParams, error) {
	var dto gameParamsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return GameParams{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	p := GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}
	if err := p.Validate(); err != nil {
		return GameParams{}, err
	}
	return p, nil
}
