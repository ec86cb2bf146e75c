package fixedcore

import (
	"errors"
	"fmt"
)

// Errors shared by every package in the module. Capacity and encoding failures
// are always returned; precondition violations panic.
var (
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrMalformedEncoding = errors.New("malformed utf-8")
)

// CapacityError reports an operation that needed more room than a fixed
// buffer provides.
type CapacityError struct {
	Op   string // operation that failed, e.g. "fixedvec.Push"
	Need int    // units the operation required
	Have int    // units that were available
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %v (need %d, have %d)", e.Op, ErrCapacityExceeded, e.Need, e.Have)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// EncodingError reports invalid input at Offset. Everything before Offset
// decoded cleanly.
type EncodingError struct {
	Op     string
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v at offset %d", e.Op, ErrMalformedEncoding, e.Offset)
}

// Unwrap returns ErrMalformedEncoding.
func (e *EncodingError) Unwrap() error { return ErrMalformedEncoding }

// NewCapacityError is shorthand used by the container packages.
func NewCapacityError(op string, need, have int) error {
	return &CapacityError{Op: op, Need: need, Have: have}
}

// NewEncodingError is shorthand used by the text packages.
func NewEncodingError(op string, offset int) error {
	return &EncodingError{Op: op, Offset: offset}
}
