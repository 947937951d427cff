// Package apperr defines the error kinds every operation in the service
// reports. Transport code translates a Kind into a status code in one place.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindUnauthenticated
	KindForbidden
	KindConflict
	KindNotFound
	KindPayloadTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthorized:
		return "unauthorized"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindPayloadTooLarge:
		return "payload_too_large"
	default:
		return "internal"
	}
}

// Error carries a Kind, a client-safe message and an optional cause.
// The cause is never shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by Kind so callers can write
// errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind sentinels, usable with errors.Is.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrPayloadTooLarge = &Error{Kind: KindPayloadTooLarge}
	ErrInternal        = &Error{Kind: KindInternal}
)

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func InvalidInput(msg string) *Error    { return New(KindInvalidInput, msg) }
func Unauthorized(msg string) *Error    { return New(KindUnauthorized, msg) }
func Unauthenticated(msg string) *Error { return New(KindUnauthenticated, msg) }
func Forbidden(msg string) *Error       { return New(KindForbidden, msg) }
func Conflict(msg string) *Error        { return New(KindConflict, msg) }
func NotFound(msg string) *Error        { return New(KindNotFound, msg) }
func PayloadTooLarge(msg string) *Error { return New(KindPayloadTooLarge, msg) }

// Internal wraps an unexpected failure. The message stays generic.
func Internal(err error) *Error {
	return Wrap(KindInternal, "server error", err)
}

// KindOf reports the Kind of err, or KindInternal for anything that is not
// an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
