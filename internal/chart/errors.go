package chart

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every rejected chart input.
var ErrValidation = errors.New("validation error")

// ValidationError names the offending entry and field. Index is None for
// errors that are not tied to a single entry.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index == None {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid sector %d %s: %s", e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
