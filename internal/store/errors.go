package store

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("position out of range")
	ErrUnknownField = errors.New("unknown account field")
)

// OutOfRangeError reports a position that is not currently occupied. Scope is
// "account" or "transaction"; Account is the owning account index for
// transaction positions and -1 otherwise.
type OutOfRangeError struct {
	Scope   string
	Account int
	Index   int
	Len     int
}

func (e *OutOfRangeError) Error() string {
	if e.Scope == scopeTransaction {
		return fmt.Sprintf("transaction index %d out of range for account %d (len %d)", e.Index, e.Account, e.Len)
	}
	return fmt.Sprintf("%s index %d out of range (len %d)", e.Scope, e.Index, e.Len)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
