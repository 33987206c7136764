package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingMethod = errors.New("record has no method")

// Codec turns websocket text frames into events and commands into frames.
type Codec interface {
	DecodeEvent(frame []byte) (Event, error)
	EncodeCommand(cmd Command) ([]byte, error)
}

// JSONCodec speaks the flat JSON object format used by the budget server.
type JSONCodec struct{}

func (JSONCodec) DecodeEvent(frame []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(frame, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if event.Method == "" {
		return Event{}, ErrMissingMethod
	}
	return event, nil
}

func (JSONCodec) EncodeCommand(cmd Command) ([]byte, error) {
	if cmd.Method == "" {
		return nil, ErrMissingMethod
	}
	frame, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to encode command %q: %w", cmd.Method, err)
	}
	return frame, nil
}

// EncodeEvent is the server-side direction, used by fixtures and the journal.
func (JSONCodec) EncodeEvent(event Event) ([]byte, error) {
	return json.Marshal(event)
}
