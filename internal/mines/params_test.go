package mines

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoundTrip(t *testing.T) {
	p := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.Equal(t, "30:16:99", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)
}

func TestParseSeedErrors(t *testing.T) {
	for _, seed := range []string{"", "9:9", "9:9:10:1", "a:b:c", "0:9:10", "9:9:-1"} {
		_, err := ParseSeed(seed)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "seed %q", seed)
	}
}

func TestParseGameParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    GameParams
		wantErr bool
	}{
		{
			name:  "all fields",
			query: "width=9&height=8&mine_count=10",
			want:  GameParams{Width: 9, Height: 8, MineCount: 10},
		},
		{
			name:  "unknown keys ignored",
			query: "width=3&height=3&mine_count=0&unique=1",
			want:  GameParams{Width: 3, Height: 3, MineCount: 0},
		},
		{
			name:    "missing mine count",
			query:   "width=9&height=9",
			wantErr: true,
		},
		{
			name:    "not a number",
			query:   "width=nine&height=9&mine_count=10",
			wantErr: true,
		},
		{
			name:    "zero height",
			query:   "width=9&height=0&mine_count=10",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			p, err := ParseGameParams(src)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p)
		})
	}
}

func TestNewFromParams(t *testing.T) {
	p := GameParams{Width: 5, Height: 4, MineCount: 3}
	b, err := NewFromParams(p, SeededRand(7))
	require.NoError(t, err)

	w, h, mc := p.Unpack()
	assert.Equal(t, w, b.Width())
	assert.Equal(t, h, b.Height())
	assert.Equal(t, mc, b.MineCount())
}
