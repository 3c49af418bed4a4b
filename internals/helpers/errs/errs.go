// Package errs carries the domain error taxonomy. Services signal a kind;
// only the HTTP boundary turns kinds into status codes.
package errs

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	// NotFound: the owning entity is absent.
	NotFound Kind = iota + 1
	// InvalidState: the owning entity exists but is disabled/inactive.
	InvalidState
	// InvalidInput: validation or business-rule failure.
	InvalidInput
	// Conflict: duplicate logical key.
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the taxonomy kind, or 0 when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

// StatusOf maps a kind to its transport status code.
// NotFound→404, InvalidState→400, InvalidInput→400, Conflict→409.
func StatusOf(kind Kind) int {
	switch kind {
	case NotFound:
		return fiber.StatusNotFound
	case InvalidState, InvalidInput:
		return fiber.StatusBadRequest
	case Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
