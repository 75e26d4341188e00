package jsonz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	address, err := Unmarshal[map[string]string]([]byte(`{"state":"MA","zip":"02111"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"state": "MA", "zip": "02111"}, *address)

	temps, err := Unmarshal[[]int]([]byte(` [67, 99, 125] `))
	require.NoError(t, err)
	assert.Equal(t, []int{67, 99, 125}, *temps)

	bad, err := Unmarshal[[]int]([]byte(`[1,]`))
	var serr *json.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Nil(t, bad)

	bad, err = Unmarshal[[]int]([]byte(`[1] [2]`))
	assert.ErrorIs(t, err, ErrTrailingData)
	assert.Nil(t, bad)
}

func TestDecode(t *testing.T) {
	v, err := Decode([]byte(`[11, 7, "x"]`))
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("11"), json.Number("7"), "x"}, v)

	v, err = Decode([]byte(`{"state":"MA","zip":"02111"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"state": "MA", "zip": "02111"}, v)

	v, err = Decode([]byte("42\n"))
	require.NoError(t, err)
	assert.Equal(t, json.Number("42"), v)

	_, err = Decode([]byte(`[1,`))
	assert.Error(t, err)
}

func TestDecodeTrailingData(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"second value", `[1] {"garbage"`},
		{"second complete value", `{"a":1} {"b":2}`},
		{"stray bracket", `[1]]`},
		{"stray scalar", `"a" 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrTrailingData)
			assert.Nil(t, v)
		})
	}
}
