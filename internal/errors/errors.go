// Package errors holds the sentinel errors shared across layers. Use cases wrap them to
// say what went wrong; handlers and commands map them to status codes and messages.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the endpoint or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput: a request parameter, flag, or configured value failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized: a mirror request carried a missing or mismatched signature.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable: a backend, lookup service, or KMS could not be reached or answered
	// with a non-success status.
	ErrUnavailable = errors.New("unavailable")
)

// New returns a sentinel that matches none of the shared categories.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, keeping it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
