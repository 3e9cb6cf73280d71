package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrNullInput           = errors.New("required input is missing")
	ErrValidationFailed    = errors.New("validation failed")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrDateParse           = errors.New("invalid date")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// ValidationFailedError carries every field error found in a single request.
// It matches ErrValidationFailed under errors.Is.
type ValidationFailedError struct {
	Result ValidationResult
}

func (e *ValidationFailedError) Error() string {
	codes := make([]string, 0, len(e.Result.Errors()))
	for _, ve := range e.Result.Errors() {
		codes = append(codes, ve.Code)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(codes, ", ")
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}

// Errors returns the accumulated field errors.
func (e *ValidationFailedError) Errors() []ValidationError {
	return e.Result.Errors()
}
