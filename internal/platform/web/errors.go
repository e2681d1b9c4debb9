// Package web carries the HTTP response envelope and the error kinds shared
// by every handler. Service errors are classified into kinds; handlers render
// all of them as a flat {"status":"error","msg":...} body with HTTP 200 so
// legacy clients that only inspect the body keep working.
package web

import "errors"

// Kind classifies a service error for logging and client messaging.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	default:
		return "internal"
	}
}

// Error is a classified, client-safe service error. Msg is shown to the
// client verbatim for every kind except KindInternal.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError reports malformed or missing input.
func ValidationError(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// ConflictError reports a uniqueness violation such as a taken email or a
// booked appointment slot.
func ConflictError(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// NotFoundError reports a missing entity.
func NotFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// AuthError reports a failed credential check.
func AuthError(msg string) error {
	return &Error{Kind: KindAuth, Msg: msg}
}

// InternalError wraps an unexpected failure. The wrapped cause is logged but
// never shown to the client.
func InternalError(err error) error {
	return &Error{Kind: KindInternal, Msg: "Server error occurred", Err: err}
}

// KindOf extracts the kind of err, defaulting to KindInternal for errors
// that were never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
