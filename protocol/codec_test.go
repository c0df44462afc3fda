package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fruit-catcher/game"
)

var codecs = []Codec{JSONCodec{}, MsgpackCodec{}}

func TestCodecByName(t *testing.T) {
	c, err := CodecByName("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())
	assert.False(t, c.Binary())

	c, err = CodecByName("msgpack")
	require.NoError(t, err)
	assert.Equal(t, "msgpack", c.Name())
	assert.True(t, c.Binary())

	c, err = CodecByName("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	_, err = CodecByName("xml")
	assert.ErrorIs(t, err, ErrUnknownCodec)
}

func TestInboundMessages(t *testing.T) {
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			frame, err := Encode(c, MsgStart, Start{TimeLimit: 45})
			require.NoError(t, err)

			env, err := DecodeEnvelope(c, frame)
			require.NoError(t, err)
			assert.Equal(t, MsgStart, env.T)

			start, err := DecodePayload[Start](c, env)
			require.NoError(t, err)
			assert.Equal(t, 45, start.TimeLimit)

			frame, err = Encode(c, MsgPose, Pose{X: 0.25})
			require.NoError(t, err)
			env, err = DecodeEnvelope(c, frame)
			require.NoError(t, err)
			pose, err := DecodePayload[Pose](c, env)
			require.NoError(t, err)
			assert.Equal(t, 0.25, pose.X)
		})
	}
}

func TestStateCarriesSnapshot(t *testing.T) {
	snap := game.Snapshot{
		BasketLane:    game.LaneRight,
		RemainingTime: 12,
		Score:         350,
		Level:         1,
		Active:        true,
		Items: []game.Item{
			{ID: 4, Category: game.CategoryOrange, Score: 250, Speed: 5, Lane: game.LaneLeft, Y: 120.5},
		},
	}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			frame, err := Encode(c, MsgState, snap)
			require.NoError(t, err)

			env, err := DecodeEnvelope(c, frame)
			require.NoError(t, err)
			got, err := DecodePayload[game.Snapshot](c, env)
			require.NoError(t, err)
			assert.Equal(t, snap, got)
		})
	}
}

func TestJSONWireFormat(t *testing.T) {
	frame, err := Encode(JSONCodec{}, MsgLane, Lane{Lane: "left"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"lane","p":{"lane":"left"}}`, string(frame))

	frame, err = Encode(JSONCodec{}, MsgState, game.Snapshot{BasketLane: game.LaneCenter, Level: 1})
	require.NoError(t, err)
	assert.Contains(t, string(frame), `"basketLane":"center"`)
}

func TestDecodeErrors(t *testing.T) {
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			_, err := DecodeEnvelope(c, nil)
			assert.ErrorIs(t, err, ErrEmptyFrame)

			_, err = DecodeEnvelope(c, []byte{0xc1, 0x00})
			assert.Error(t, err)

			_, err = Encode(c, "", Stop{})
			assert.ErrorIs(t, err, ErrMissingType)

			_, err = Encode(c, MsgStop, nil)
			assert.ErrorIs(t, err, ErrEmptyPayload)

			_, err = DecodePayload[Start](c, Envelope{T: MsgStart})
			assert.ErrorIs(t, err, ErrEmptyPayload)
		})
	}
}

func TestJSONBarePayloadlessFrame(t *testing.T) {
	env, err := DecodeEnvelope(JSONCodec{}, []byte(`{"t":"stop"}`))
	require.NoError(t, err)
	assert.Equal(t, MsgStop, env.T)
	assert.Empty(t, env.P)

	_, err = DecodeEnvelope(JSONCodec{}, []byte(`{"p":{}}`))
	assert.ErrorIs(t, err, ErrMissingType)
}
