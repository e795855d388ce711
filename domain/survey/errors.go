package survey

import (
	"errors"
	"fmt"
)

// Domain errors - centralized definitions for the conditions callers classify
var (
	// ErrDataNotFound marks the configured survey file being absent, as
	// opposed to any other load or render failure.
	ErrDataNotFound = errors.New("survey data file not found")

	// ErrColumnMissing marks a chart referencing a survey variable the
	// loaded table does not carry.
	ErrColumnMissing = errors.New("column not present in survey table")

	ErrNoColumns = errors.New("survey table must have at least one column")
)

// NewDataNotFoundError records the path that was attempted.
func NewDataNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrDataNotFound, path)
}

// NewColumnMissingError records the variable a renderer asked for.
func NewColumnMissingError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnMissing, column)
}

// Error checking helpers
func IsDataNotFound(err error) bool {
	return errors.Is(err, ErrDataNotFound)
}

func IsColumnMissing(err error) bool {
	return errors.Is(err, ErrColumnMissing)
}
