package domain

import (
	"errors"
	"fmt"
)

var (
	// Amount errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Entry errors
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidCadence  = errors.New("invalid cadence")

	// Storage errors
	ErrStorageCorrupt = errors.New("stored value is corrupt")

	// Capture errors
	ErrCaptureInProgress = errors.New("amount capture already in progress")
	ErrNoAmountHeard     = errors.New("no amount recognized in transcript")
)

// ValidationError reports an input rejected before any state change.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError wraps err for the given input field.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
