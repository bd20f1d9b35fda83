package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Repository-level sentinels. Services translate them into *Error values
// carrying the message the client sees.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// ErrorKind classifies a failure. Every kind has a default HTTP status.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuthMissing
	KindAuthInvalid
	KindForbidden
	KindNotFound
	KindConflict
)

var kindStatus = map[ErrorKind]int{
	KindInternal:    http.StatusInternalServerError,
	KindValidation:  http.StatusBadRequest,
	KindAuthMissing: http.StatusUnauthorized,
	KindAuthInvalid: http.StatusUnauthorized,
	KindForbidden:   http.StatusForbidden,
	KindNotFound:    http.StatusNotFound,
	KindConflict:    http.StatusConflict,
}

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthMissing:
		return "auth_missing"
	case KindAuthInvalid:
		return "auth_invalid"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status returns the default HTTP status for the kind.
func (k ErrorKind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error is the typed failure rendered by the central error handler as
// {"success": false, "message": Message} with status Status.
// Values are never mutated after construction.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

// NewError builds an Error whose status is the kind's default.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Status: kind.Status(), Message: msg}
}

// Errorf is NewError with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return NewError(kind, fmt.Sprintf(format, args...))
}

// Wrap attaches cause to a new Error of the given kind.
func Wrap(kind ErrorKind, cause error, msg string) *Error {
	e := NewError(kind, msg)
	e.Err = cause
	return e
}

// WithStatus returns a copy of e answering with status instead.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind and message, so tests and
// callers can compare against prebuilt values with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// AsError unwraps err to a *Error if one is present in the chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Messages shared by the auth pipeline.
const (
	MsgNoToken          = "No token provided"
	MsgInvalidToken     = "Failed to authenticate token"
	MsgLoginFirst       = "please log in first"
	MsgInvalidSubjectID = "This is not valid id"
)
