// Package waiterrors defines the uniform error taxonomy shared by every
// subsystem in waitkit: channels, dispatch, fixed-width integers, paths and
// random engines all surface failures through this package rather than
// inventing their own sentinel types.
package waiterrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error. It mirrors the taxonomy spelled out for the
// runtime: ordinary channel closure never raises one of these, it is
// reserved for genuine failures.
type Kind int

const (
	// InvalidArgument covers malformed strings, out-of-range values and
	// illegal flag combinations.
	InvalidArgument Kind = iota
	// NotFound covers a missing filesystem target.
	NotFound
	// AlreadyExists covers a collision when overwrite was not requested.
	AlreadyExists
	// Io covers read/write failures, permission errors and device errors.
	Io
	// Unsupported covers an operation unavailable on the current platform.
	Unsupported
	// Cancelled covers a channel that closed while an operation was in flight.
	Cancelled
	// CallbackFault wraps an error raised by a Dispatch callback.
	CallbackFault
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	case Io:
		return "io"
	case Unsupported:
		return "unsupported"
	case Cancelled:
		return "cancelled"
	case CallbackFault:
		return "callback_fault"
	default:
		return "unknown"
	}
}

// Error is the uniform error type surfaced to callers. It always carries a
// Kind and a message, and optionally wraps an underlying cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause so callers can use errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error of the given Kind with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given Kind, wrapping cause with a stack trace
// via github.com/pkg/errors so the origin survives across goroutine
// boundaries (Dispatch workers, in particular).
func Wrap(kind Kind, cause error, message string) *Error {
	if cause == nil {
		return New(kind, message)
	}
	return &Error{Kind: kind, Message: message, cause: errors.Wrap(cause, message)}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Cause unwraps to the deepest non-waiterrors cause, mirroring
// errors.Cause semantics from github.com/pkg/errors.
func Cause(err error) error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.cause == nil {
				return e
			}
			err = e.cause
			continue
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return err
		}
		err = c.Cause()
	}
	return err
}
