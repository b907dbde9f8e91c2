package cas

import (
	"errors"
	"fmt"
)

// ErrInvalidNumber is matched by every parse failure.
var ErrInvalidNumber = errors.New("invalid CAS number")

// InvalidNumberError reports input that is not a well-formed CAS number.
// Input is kept verbatim for display to the caller.
type InvalidNumberError struct {
	Input  string
	Reason string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid CAS number %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidNumber) succeed.
func (e *InvalidNumberError) Unwrap() error {
	return ErrInvalidNumber
}

func invalid(input, reason string) error {
	return &InvalidNumberError{Input: input, Reason: reason}
}
