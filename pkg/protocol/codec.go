package protocol

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

type genericMessage struct {
	Op Op
}

// Encode marshals a message for the wire.
func Encode(message Message) ([]byte, error) {
	return cbor.Marshal(message)
}

// Decode unmarshals a client -> server message, routing on the op field.
// Server -> client ops coming from a client are rejected.
func Decode(data []byte) (Message, error) {
	var generic genericMessage
	if err := cbor.Unmarshal(data, &generic); err != nil {
		return nil, err
	}

	switch generic.Op {
	case JoinOp:
		var message JoinMessage
		if err := cbor.Unmarshal(data, &message); err != nil {
			return nil, err
		}
		return message, nil
	case StateOp:
		var message StateMessage
		if err := cbor.Unmarshal(data, &message); err != nil {
			return nil, err
		}
		return message, nil
	case CollideOp:
		var message CollideMessage
		if err := cbor.Unmarshal(data, &message); err != nil {
			return nil, err
		}
		return message, nil
	case DisconnectOp:
		return DisconnectMessage{Op: DisconnectOp}, nil
	}

	return nil, fmt.Errorf("unrecognized op %d", generic.Op)
}
