package protocol

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoutesByOp(t *testing.T) {
	data, err := Encode(JoinMessage{Op: JoinOp, Name: "alice", Sprite: 2, X: 10, Y: 20})
	require.NoError(t, err)

	message, err := Decode(data)
	require.NoError(t, err)

	join, ok := message.(JoinMessage)
	require.True(t, ok)
	require.Equal(t, "alice", join.Name)
	require.Equal(t, int32(2), join.Sprite)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x00, 0x12})
	require.Error(t, err)
}

func TestDecodeRejectsServerOps(t *testing.T) {
	// A client has no business sending server -> client messages.
	data, err := cbor.Marshal(ScoredMessage{Op: ScoredOp, Score: 9000})
	require.NoError(t, err)

	_, err = Decode(data)
	require.Error(t, err)
}
