package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLane(t *testing.T) {
	cases := map[string]Lane{
		"left":   LaneLeft,
		"LEFT":   LaneLeft,
		"center": LaneCenter,
		"centre": LaneCenter,
		"middle": LaneCenter,
		" right": LaneRight,
	}
	for name, want := range cases {
		got, err := ParseLane(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLane("up")
	assert.ErrorIs(t, err, ErrUnknownLane)
}

func TestLaneJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Lane Lane `json:"lane"`
	}{LaneRight})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lane":"right"}`, string(data))

	var out struct {
		Lane Lane `json:"lane"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lane":"left"}`), &out))
	assert.Equal(t, LaneLeft, out.Lane)

	assert.Error(t, json.Unmarshal([]byte(`{"lane":"down"}`), &out))
}

func TestLaneValid(t *testing.T) {
	assert.True(t, LaneLeft.Valid())
	assert.True(t, LaneRight.Valid())
	assert.False(t, Lane(3).Valid())
	assert.False(t, Lane(-1).Valid())
	assert.Equal(t, "unknown", Lane(7).String())
}
