// Package serrors provides semantic errors tagged with a kind. Kinds are named
// after the canonical status codes of the callable-function protocol so that a
// transport can report them without a translation table of its own.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and can be used with errors.Is/As through the serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Canonical kinds. Their Error() string is the status reported on the wire.
var (
	// ErrInvalidArgument indicates the caller sent an invalid request.
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnknown indicates a failure that was not classified further.
	ErrUnknown = NewKind("UNKNOWN")
	// ErrUnauthenticated indicates missing or invalid authentication.
	ErrUnauthenticated = NewKind("UNAUTHENTICATED")
	// ErrPermissionDenied indicates the caller may not perform the operation.
	ErrPermissionDenied = NewKind("PERMISSION_DENIED")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrDeadlineExceeded indicates the operation timed out.
	ErrDeadlineExceeded = NewKind("DEADLINE_EXCEEDED")
	// ErrUnavailable indicates the service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message. It supports errors.Is/errors.As against both the kind and
// the cause.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg set: "<msg>"
//   - only err set: "<err>"
//   - neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind around a cause.
// An empty msgFmt keeps the cause's message as the error's message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	e := &Error{kind: k, err: err}
	if msgFmt != "" {
		e.msg = fmt.Sprintf(msgFmt, args...)
	}

	return e
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf reports the kind of err. Errors that carry no kind report ErrUnknown
// and a nil error reports nil.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}

	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrUnknown
}
