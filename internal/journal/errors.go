package journal

import "errors"

var (
	ErrSessionExists  = errors.New("journal session already exists")
	ErrRecordNotFound = errors.New("record not found")
)
