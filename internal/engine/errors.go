package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrDesynced is returned by Apply once a desync has been detected and
	// the engine has not been reset.
	ErrDesynced = errors.New("mirror is out of sync with the server")
	// ErrMissingIndex marks an event that lacks a position it requires.
	ErrMissingIndex = errors.New("required index missing")
)

// DesyncError reports an event that cannot be applied to the current mirror,
// which means an event was missed or duplicated upstream. It is fatal for the
// session: the mirror must be rebuilt from a fresh snapshot.
type DesyncError struct {
	Method string
	Err    error
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("desync applying %q: %v", e.Method, e.Err)
}

func (e *DesyncError) Unwrap() error {
	return e.Err
}
