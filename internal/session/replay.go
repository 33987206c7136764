package session

import (
	"errors"

	"github.com/hance08/keaview/internal/engine"
	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/selection"
	"github.com/hance08/keaview/internal/store"
)

// Frame is one recorded inbound frame.
type Frame struct {
	Connection uint64
	Data       []byte
}

type ReplayDesync struct {
	Seq        int
	Connection uint64
	Err        *engine.DesyncError
}

type ReplayResult struct {
	Engine     *engine.Engine
	Connection uint64
	Applied    int
	Ignored    int
	Skipped    int
	Undecoded  int
	Desyncs    []ReplayDesync
}

// Replay feeds recorded frames through a fresh engine the way a live session
// would: a new connection resets the mirror, and after a desync the rest of
// that connection is skipped.
func Replay(frames []Frame, codec protocol.Codec, settings engine.Settings) *ReplayResult {
	eng := engine.New(store.New(), selection.New(), settings)
	result := &ReplayResult{Engine: eng}

	skipping := false
	for i, frame := range frames {
		if i == 0 || frame.Connection != result.Connection {
			eng.Reset()
			result.Connection = frame.Connection
			skipping = false
		}
		if skipping {
			result.Skipped++
			continue
		}

		event, err := codec.DecodeEvent(frame.Data)
		if err != nil {
			result.Undecoded++
			continue
		}
		before := eng.Applied()
		err = eng.Apply(event)
		var desync *engine.DesyncError
		if errors.As(err, &desync) {
			result.Desyncs = append(result.Desyncs, ReplayDesync{Seq: i + 1, Connection: frame.Connection, Err: desync})
			eng.Reset()
			skipping = true
			continue
		}
		if eng.Applied() > before {
			result.Applied++
		} else {
			result.Ignored++
		}
	}
	return result
}
