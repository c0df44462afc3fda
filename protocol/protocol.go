// Package protocol defines the bridge wire format: a typed envelope {t, p}
// whose payload is encoded with a pluggable codec (JSON text or msgpack binary).
package protocol

import "errors"

// Inbound message types
const (
	MsgStart = "start"
	MsgStop  = "stop"
	MsgLane  = "lane"
	MsgPose  = "pose"
)

// Outbound message types
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgScore   = "score"
	MsgEnd     = "end"
	MsgError   = "error"
)

var (
	ErrEmptyFrame     = errors.New("empty frame")
	ErrMissingType    = errors.New("envelope type is empty")
	ErrEmptyPayload   = errors.New("empty payload")
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrUnknownMessage = errors.New("unknown message type")
)

// Envelope is a decoded frame; P holds the payload still in codec form
type Envelope struct {
	T string
	P []byte
}
