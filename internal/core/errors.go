package core

import "errors"

// Code is a machine-readable lookup failure reason.
type Code string

const (
	CodeInvalidProfileURL Code = "INVALID_PROFILE_URL"
	CodeVanityNotFound    Code = "VANITY_NOT_FOUND"
	CodeProfileNotFound   Code = "PROFILE_NOT_FOUND"
	CodeTransport         Code = "TRANSPORT_ERROR"
)

// Error is a lookup failure carrying its code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so errors.Is(err, ErrVanityNotFound)
// works regardless of message.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrInvalidProfileURL = &Error{Code: CodeInvalidProfileURL, Message: "invalid steam profile url"}
	ErrVanityNotFound    = &Error{Code: CodeVanityNotFound, Message: "vanity name not found"}
	ErrProfileNotFound   = &Error{Code: CodeProfileNotFound, Message: "profile not found"}
	ErrTransport         = &Error{Code: CodeTransport, Message: "steam request failed"}
)

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain. Anything else,
// including context expiry, is a transport failure.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeTransport
}
