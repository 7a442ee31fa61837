package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application failure. Each kind maps to one HTTP status.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unexpected"
	}
}

// Error is a failure with a user-facing message. Cause is kept for logs and
// errors.Is/As but never rendered to clients.
type Error struct {
	Kind    Kind
	Message string
	Details any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, msg string, details any, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Details: details, cause: cause}
}

// Validation reports a missing or malformed input. details is usually a
// map[field]message.
func Validation(msg string, details any) *Error {
	return newError(KindValidation, msg, details, nil)
}

func NotFound(msg string) *Error     { return newError(KindNotFound, msg, nil, nil) }
func Conflict(msg string) *Error     { return newError(KindConflict, msg, nil, nil) }
func Unauthorized(msg string) *Error { return newError(KindUnauthorized, msg, nil, nil) }
func Forbidden(msg string) *Error    { return newError(KindForbidden, msg, nil, nil) }

// UnauthorizedWrap keeps the verification error reachable via errors.Is.
func UnauthorizedWrap(msg string, cause error) *Error {
	return newError(KindUnauthorized, msg, nil, cause)
}

func Unavailable(msg string, cause error) *Error {
	return newError(KindUnavailable, msg, nil, cause)
}

// Unexpected wraps an infrastructure failure (store unreachable, bad query...).
func Unexpected(msg string, cause error) *Error {
	return newError(KindUnexpected, msg, nil, cause)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf returns the kind of err; errors that are not *Error are unexpected.
func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return KindUnexpected
}

// Status maps err to an HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
