package mines

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONShape(t *testing.T) {
	b := layout(t, ".*")
	b.Reveal(0, 0)
	b.ToggleFlag(0, 1)

	data, err := json.Marshal(b)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"width": 2,
		"height": 1,
		"tiles": [
			{"bomb": false, "flagged": false, "visible": true, "num_bombs": 1},
			{"bomb": true, "flagged": true, "visible": false, "num_bombs": -1}
		]
	}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := New(8, 6, 9, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b.Reveal(3, 3)
	b.ToggleFlag(0, 0)

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded Board
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b, &decoded)
}

func TestGobRoundTrip(t *testing.T) {
	b, err := New(8, 6, 9, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b.Reveal(5, 1)
	b.ToggleFlag(2, 7)

	buf, err := b.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeBoard(buf)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
	assert.Equal(t, 9, decoded.MineCount())
}

func TestDecodeRejectsInconsistentState(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no dimensions", `{"width": 0, "height": 0, "tiles": []}`},
		{"short tiles", `{"width": 2, "height": 1, "tiles": [{"num_bombs": 0}]}`},
		{"mine without sentinel", `{"width": 1, "height": 1, "tiles": [{"bomb": true, "num_bombs": 0}]}`},
		{"sentinel without mine", `{"width": 1, "height": 1, "tiles": [{"num_bombs": -1}]}`},
		{"overflowing dimensions", `{"width": 4294967296, "height": 4294967296, "tiles": []}`},
		{"wrong count", `{"width": 2, "height": 1, "tiles": [{"num_bombs": 7}, {"num_bombs": 0}]}`},
		{"count ignores mine", `{"width": 2, "height": 1, "tiles": [{"bomb": true, "num_bombs": -1}, {"num_bombs": 0}]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b Board
			assert.ErrorIs(t, json.Unmarshal([]byte(test.data), &b), ErrInvalidConfiguration)
		})
	}
}

func TestString(t *testing.T) {
	b := layout(t, "..*", "...")
	b.Reveal(1, 0)
	b.ToggleFlag(0, 2)

	assert.Equal(t, "  1 F\n  1 .\n", b.String())

	b.RevealAll()
	assert.Equal(t, "  1 *\n  1 1\n", b.String())
}

func TestDecodeBoardRejectsWrongCount(t *testing.T) {
	b := layout(t, "..*", "...")
	state := b.state()
	state.Tiles[0].AdjacentMines = 3

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(state))

	_, err := DecodeBoard(buf.Bytes())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
