package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/manitmishra/ghostwriter/model"
)

// Error is a classified generation failure. Every provider failure is
// surfaced as one of these; the message is already user-presentable.
type Error struct {
	Kind    model.ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// classifyStatus maps a non-2xx HTTP status onto the error taxonomy.
// detail is the best-effort server-provided message (raw body text when the
// body was not valid JSON).
func classifyStatus(status int, detail string) *Error {
	switch status {
	case 401:
		return &Error{
			Kind:    model.ErrInvalidCredential,
			Message: fmt.Sprintf("Invalid API key (401). Details: %s", detail),
		}
	case 429:
		return &Error{
			Kind:    model.ErrRateLimited,
			Message: "Rate limit exceeded. Please wait a moment and try again.",
		}
	default:
		return &Error{
			Kind:    model.ErrRequestFailed,
			Message: fmt.Sprintf("API request failed (%d): %s", status, detail),
		}
	}
}

// timeoutError reports an aborted in-flight request.
func timeoutError() *Error {
	return &Error{
		Kind:    model.ErrTimeout,
		Message: "Request timed out. Please try again.",
	}
}

// malformedError reports a 2xx response with no usable text content.
func malformedError() *Error {
	return &Error{
		Kind:    model.ErrMalformedResponse,
		Message: "Invalid API response format",
	}
}

// transportError reports a failure before any HTTP status was received.
func transportError(err error) *Error {
	return &Error{
		Kind:    model.ErrRequestFailed,
		Message: fmt.Sprintf("API request failed: %v", err),
	}
}

// isAborted reports whether err stems from the timeout or cancellation of
// the in-flight request.
func isAborted(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
