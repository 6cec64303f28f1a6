package service

import (
	"errors"

	"gorm.io/gorm"
)

// Error kinds. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrAuth       = errors.New("unauthorized")
)

// Error carries a client-facing message for one of the error kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func validationError(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }
func conflictError(msg string) error   { return &Error{Kind: ErrConflict, Message: msg} }
func notFoundError(msg string) error   { return &Error{Kind: ErrNotFound, Message: msg} }
func authError(msg string) error       { return &Error{Kind: ErrAuth, Message: msg} }

// storeError turns a missing row into ErrNotFound with msg and passes other errors through.
func storeError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError(msg)
	}
	return err
}

// writeError turns a unique-index violation into ErrConflict with msg.
func writeError(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflictError(msg)
	}
	return err
}

// Message returns the client-facing message of a service error, or "" for internal errors.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
