package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrStore  = "STORE"
	ErrInput  = "INPUT"
	ErrExec   = "EXEC"
)

// Reasons narrow a code down for callers that branch on the failure, such as
// the JSON output of the CLI.
const (
	ReasonNotFound   = "not_found"
	ReasonOutOfRange = "out_of_range"
	ReasonBlank      = "blank"
	ReasonLocked     = "locked"
)

// Error is a failure the user can act on. It renders as:
//
//	✗ <What failed>
//
//	  <Underlying cause, if any>
//
//	  <What to do about it>
type Error struct {
	Code       string
	Reason     string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an error with the given code, message and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap attaches a message to err. Most wrapped failures come from reading or
// writing habit data, so the code is ErrStore.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrStore,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewOutOfRange reports an index outside [1, limit] in the user's 1-based numbering.
func NewOutOfRange(what string, index, limit int) *Error {
	e := New(ErrInput,
		fmt.Sprintf("%s %d is out of range", what, index),
		fmt.Sprintf("Pick a %s between 1 and %d", what, limit))
	if limit < 1 {
		e.Suggestion = fmt.Sprintf("There is no %s to pick", what)
	}
	return e.WithReason(ReasonOutOfRange)
}

// WithReason sets the reason and returns e for chaining.
func (e *Error) WithReason(reason string) *Error {
	e.Reason = reason
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var tErr *Error
	if err == nil || !errors.As(err, &tErr) {
		return nil, false
	}
	return tErr, true
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code string) bool {
	tErr, ok := As(err)
	return ok && tErr.Code == code
}

// HasReason reports whether err is an *Error with the given reason.
func HasReason(err error, reason string) bool {
	tErr, ok := As(err)
	return ok && tErr.Reason == reason
}
