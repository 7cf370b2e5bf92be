package pantry

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes store errors.
type ErrorKind string

const (
	// KindInvalidArgument indicates input the store refuses to accept,
	// e.g. a blank entity name.
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"

	// KindPersistence indicates a snapshot load or save failure. These
	// are recoverable: in-memory state stays authoritative and the
	// caller may retry or warn.
	KindPersistence ErrorKind = "PERSISTENCE"
)

// Error is a kind-carrying store error.
//
// Not-found conditions on id-keyed mutators are deliberately NOT
// errors; they are silent no-ops (see package doc). Error is reserved
// for the two cases the caller can act on: rejected input and lost
// durability.
type Error struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// Op names the store operation that failed, e.g. "AddIngredient".
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidArgument reports whether err is an InvalidArgument store error.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == KindInvalidArgument
	}
	return false
}

// IsPersistence reports whether err is a Persistence store error.
// Uses errors.As to handle wrapped errors.
func IsPersistence(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == KindPersistence
	}
	return false
}

// newInvalidArgument creates an InvalidArgument error for op.
func newInvalidArgument(op, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: message}
}

// newPersistenceError wraps a snapshot load/save failure for op.
func newPersistenceError(op, message string, err error) *Error {
	return &Error{Kind: KindPersistence, Op: op, Message: message, Err: err}
}
