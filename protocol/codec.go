package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes envelopes and payloads
type Codec interface {
	// Name identifies the codec in configuration and the welcome frame
	Name() string

	// Binary reports whether frames are binary rather than text
	Binary() bool

	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error

	// Wrap encodes an envelope around an already-encoded payload
	Wrap(t string, payload []byte) ([]byte, error)

	// Unwrap decodes the envelope, leaving the payload encoded
	Unwrap(frame []byte) (Envelope, error)
}

// JSONCodec is the text codec browsers speak natively
type JSONCodec struct{}

type jsonEnvelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}

func (JSONCodec) Name() string                       { return "json" }
func (JSONCodec) Binary() bool                       { return false }
func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSONCodec) Wrap(t string, payload []byte) ([]byte, error) {
	return json.Marshal(jsonEnvelope{T: t, P: payload})
}

func (JSONCodec) Unwrap(frame []byte) (Envelope, error) {
	var e jsonEnvelope
	if err := json.Unmarshal(frame, &e); err != nil {
		return Envelope{}, err
	}
	return Envelope{T: e.T, P: e.P}, nil
}

// MsgpackCodec is the compact binary codec
type MsgpackCodec struct{}

type msgpackEnvelope struct {
	T string             `msgpack:"t"`
	P msgpack.RawMessage `msgpack:"p,omitempty"`
}

func (MsgpackCodec) Name() string                       { return "msgpack" }
func (MsgpackCodec) Binary() bool                       { return true }
func (MsgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (MsgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

func (MsgpackCodec) Wrap(t string, payload []byte) ([]byte, error) {
	return msgpack.Marshal(&msgpackEnvelope{T: t, P: payload})
}

func (MsgpackCodec) Unwrap(frame []byte) (Envelope, error) {
	var e msgpackEnvelope
	if err := msgpack.Unmarshal(frame, &e); err != nil {
		return Envelope{}, err
	}
	return Envelope{T: e.T, P: e.P}, nil
}

// CodecByName resolves "json" or "msgpack", case-insensitive
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack", "mp":
		return MsgpackCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Encode builds a frame of type t around payload
func Encode(c Codec, t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, ErrMissingType
	}
	if payload == nil {
		return nil, fmt.Errorf("%w for type %q", ErrEmptyPayload, t)
	}
	pb, err := c.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %q payload: %w", t, err)
	}
	return c.Wrap(t, pb)
}

// DecodeEnvelope parses a frame without decoding its payload
func DecodeEnvelope(c Codec, frame []byte) (Envelope, error) {
	if len(frame) == 0 {
		return Envelope{}, ErrEmptyFrame
	}
	env, err := c.Unwrap(frame)
	if err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.T == "" {
		return Envelope{}, ErrMissingType
	}
	return env, nil
}

// DecodePayload decodes the envelope payload into T
func DecodePayload[T any](c Codec, env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("%w for type %q", ErrEmptyPayload, env.T)
	}
	if err := c.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %q payload: %w", env.T, err)
	}
	return out, nil
}
