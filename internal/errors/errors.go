// Package errors defines the error taxonomy shared by the workspace, its
// repositories and the command line.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure by how the user should be told about it.
type Kind int

const (
	// KindUnknown is any error that carries no classification.
	KindUnknown Kind = iota
	// KindAuth means there is no session or it expired. The user must sign in again.
	KindAuth
	// KindPersistence means a repository call failed. Prior state is kept.
	KindPersistence
	// KindValidation means input was rejected before any repository call.
	KindValidation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindPersistence:
		return "persistence"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a classified error.
type Error struct {
	// Op is the operation that failed, e.g. "create" or "load".
	Op string
	// Kind classifies the failure.
	Kind Kind
	// Field names the offending input for validation errors.
	Field string
	// Message is a user-facing description. Empty means Err's text.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Auth returns an authentication error for op.
func Auth(op string, err error) *Error {
	return &Error{Op: op, Kind: KindAuth, Message: "sign in required", Err: err}
}

// Persistence returns a persistence error for op.
func Persistence(op string, err error) *Error {
	return &Error{Op: op, Kind: KindPersistence, Err: err}
}

// Validation returns a validation error for field with a user-facing message.
func Validation(op, field, message string) *Error {
	return &Error{Op: op, Kind: KindValidation, Field: field, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FieldOf returns the offending field of a validation error, or "".
func FieldOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Field
	}
	return ""
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool { return KindOf(err) == KindAuth }

// IsPersistence reports whether err is a persistence error.
func IsPersistence(err error) bool { return KindOf(err) == KindPersistence }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
