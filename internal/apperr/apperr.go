// Package apperr defines the error type used for user-facing failures.
package apperr

import (
	"errors"
	"fmt"
)

// Error is a message template that can be formatted with arguments or used to
// wrap an underlying cause. Errors derived from the same template match each
// other with errors.Is.
type Error struct {
	Message string
	Cause   error
	base    *Error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was created from the same template as e.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.root() == t.root()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
