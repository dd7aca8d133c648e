package apperrors

import (
	"errors"
	"fmt"
)

// InvalidInputError signals malformed caller input (bad date, bad city code).
// The serving layer maps it to a client error; the message is safe to surface.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInput builds an InvalidInputError with the given message
func NewInvalidInput(message string) error {
	return &InvalidInputError{Message: message}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// StorageFaultError signals that the flight store is unreachable or rejected
// an operation. It is surfaced as-is; retry policy belongs to the caller.
type StorageFaultError struct {
	Op  string
	Err error
}

func (e *StorageFaultError) Error() string {
	return fmt.Sprintf("storage fault during %s: %v", e.Op, e.Err)
}

func (e *StorageFaultError) Unwrap() error {
	return e.Err
}

// NewStorageFault wraps err as a StorageFaultError for operation op
func NewStorageFault(op string, err error) error {
	return &StorageFaultError{Op: op, Err: err}
}

// IsStorageFault reports whether err is (or wraps) a StorageFaultError
func IsStorageFault(err error) bool {
	var target *StorageFaultError
	return errors.As(err, &target)
}
