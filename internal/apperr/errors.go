package apperr

import (
	"errors"
	"fmt"
)

// Error is a typed pipeline error. Code identifies the failure class so the
// CLI boundary and tests do not have to match on message text.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Failure codes. All of them abort the run before any output is written.
const (
	CodeMissingFile  = "MISSING_FILE"
	CodeInvalidShape = "INVALID_SHAPE"
	CodeMissingField = "MISSING_FIELD"
	CodeInvalidEmail = "INVALID_EMAIL"
)

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the failure code from any error, or "" for untyped errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
