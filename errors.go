package pagebrief

import (
	"context"
	"errors"
	"fmt"
)

// Application error codes. These map the failure taxonomy of the pipeline:
// callers branch on codes, never on error strings.
const (
	ECANCELED    = "canceled"    // invocation canceled by the caller
	EEXTRACT     = "extract"     // markup empty or unparseable
	EINTERNAL    = "internal"    // unexpected internal error
	EINVALID     = "invalid"     // invalid configuration or input
	ENOCONTENT   = "no_content"  // page yielded no readable text
	ESUMMARIZE   = "summarize"   // LLM call failed permanently
	EUNAVAILABLE = "unavailable" // transient LLM/backend failure; retry may succeed
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagebrief error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Context cancellation and deadline expiry map to ECANCELED; any other
// non-application error maps to EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	} else if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ECANCELED
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
