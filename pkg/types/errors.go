package types

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// Field rule errors. Each is carried by a *ValidationError.
var (
	ErrNegativeID          = errors.New("id must be non-negative")
	ErrBlankName           = errors.New("name cannot be null or empty")
	ErrNameTooShort        = errors.New("name too short")
	ErrBirthYearOutOfRange = errors.New("birthyear out of range")
)

// Repository argument errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports a rejected field assignment. The entity keeps its
// previous value for Field.
type ValidationError struct {
	Field string // Field name: "id", "name" or "birth_year".
	Value any    // Rejected value.
	Err   error  // One of the field rule errors.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, fmt.Sprint(e.Value), e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrValidation so callers can test the error kind
// without knowing the specific rule.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidArgument reports whether err wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func validationError(field string, value any, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
