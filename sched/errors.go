package sched

import (
	"errors"
	"fmt"
)

var (
	// ErrInputShape is matched by every InputShapeError.
	ErrInputShape = errors.New("invalid input shape")

	// ErrUnknownPolicy is returned for policy names outside the supported set.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)

// InputShapeError reports input that cannot be simulated. It is detected
// before a run starts and no records are produced.
type InputShapeError struct {
	Field  string // offending input array, e.g. "arrivals"
	Want   int    // expected length, for length mismatches
	Got    int    // actual length, for length mismatches
	Index  int    // element position, -1 for whole-array problems
	Reason string // empty for length mismatches
}

// LengthMismatchError is raised for parallel arrays of different lengths.
// It unwraps to its InputShapeError, so errors.As matches either type, but
// element errors such as a negative arrival never match LengthMismatchError.
type LengthMismatchError struct {
	InputShapeError
}

// Unwrap exposes the embedded InputShapeError.
func (e *LengthMismatchError) Unwrap() error {
	return &e.InputShapeError
}

func lengthMismatch(field string, want, got int) *LengthMismatchError {
	return &LengthMismatchError{InputShapeError{Field: field, Want: want, Got: got, Index: -1}}
}

func invalidElement(field string, index int, reason string) *InputShapeError {
	return &InputShapeError{Field: field, Index: index, Reason: reason}
}

// Error implements the error interface.
func (e *InputShapeError) Error() string {
	switch {
	case e.Reason == "":
		return fmt.Sprintf("incorrect input lengths: %s has %d elements, want %d", e.Field, e.Got, e.Want)
	case e.Index >= 0:
		return fmt.Sprintf("invalid %s[%d]: %s", e.Field, e.Index, e.Reason)
	default:
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
}

// Unwrap lets errors.Is match ErrInputShape.
func (e *InputShapeError) Unwrap() error {
	return ErrInputShape
}

// IsLengthMismatch reports whether the error is about array lengths.
func (e *InputShapeError) IsLengthMismatch() bool {
	return e.Reason == ""
}
