package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed or missing input data. Adapters wrap these
// so callers can branch with errors.Is without parsing messages.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrMalformedInput = errors.New("malformed input")
)

// NewMalformedInputError wraps ErrMalformedInput with what failed and why
func NewMalformedInputError(what string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedInput, what, reason)
}

// IsInputError reports whether err stems from bad input rather than an
// internal failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrMalformedInput)
}
