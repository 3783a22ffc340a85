// Package apperror defines the failure taxonomy shared by all usecases:
// validation, not-found, conflict and persistence. Handlers map these onto
// the uniform response envelope; no other error kind crosses a usecase
// boundary.
package apperror

import (
	"errors"

	"github.com/souqline/souq-admin-service/internal/localization"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindPersistence
)

type Error struct {
	Kind    Kind
	Message localization.Message
	Err     error // underlying cause, persistence failures only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message.En + ": " + e.Err.Error()
	}
	return e.Message.En
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg localization.Message) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg localization.Message) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg localization.Message) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Persistence wraps a store failure. The cause is kept for diagnostics but
// the user-facing message stays generic.
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: localization.MsgErrorWhileSaving, Err: err}
}

// As extracts an *Error from err, or wraps err as a persistence failure so
// callers always end up with a classified error.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Persistence(err)
}

func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

func IsConflict(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindConflict
}
