// Package model provides domain types shared across packages.
package model

// ContextType identifies whether a request continues an existing thread
// or starts a new message.
type ContextType string

const (
	// ContextReply continues an existing email thread.
	ContextReply ContextType = "reply"
	// ContextCompose starts a new email with no thread behind it.
	ContextCompose ContextType = "compose"
)

// Mode selects what the generator should do with the draft.
type Mode string

const (
	// ModePolish revises the supplied draft, preserving its intent.
	ModePolish Mode = "polish"
	// ModeGenerate produces new content from thread context or notes.
	ModeGenerate Mode = "generate"
)

// ThreadMessage is one message in a reply thread, already stripped of
// quoted sub-content by the caller. Immutable once constructed.
type ThreadMessage struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// Context carries the thread history for a request.
// Invariant: ContextCompose implies Messages is empty; ContextReply
// messages are ordered oldest to newest.
type Context struct {
	Type     ContextType     `json:"type"`
	Messages []ThreadMessage `json:"messages"`
}

// GenerationRequest is the inbound request for one drafting operation.
// ModePolish assumes a non-empty draft by caller convention; the core
// does not enforce it.
type GenerationRequest struct {
	Draft   string  `json:"draft"`
	Context Context `json:"context"`
	Tone    string  `json:"tone"`
	Mode    Mode    `json:"mode"`
}

// ErrorKind classifies a terminal request failure. None of these are
// retried by the core; retry policy belongs to the caller.
type ErrorKind string

const (
	// ErrMissingCredential means no API key is configured; no network call was made.
	ErrMissingCredential ErrorKind = "missing_credential"
	// ErrTimeout means the in-flight request was aborted after the client timeout.
	ErrTimeout ErrorKind = "timeout"
	// ErrInvalidCredential means the service rejected the API key (HTTP 401).
	ErrInvalidCredential ErrorKind = "invalid_credential"
	// ErrRateLimited means the service throttled the request (HTTP 429).
	ErrRateLimited ErrorKind = "rate_limited"
	// ErrRequestFailed covers other non-2xx responses and transport failures.
	ErrRequestFailed ErrorKind = "request_failed"
	// ErrMalformedResponse means a 2xx response had no usable text content.
	ErrMalformedResponse ErrorKind = "malformed_response"
)

// GenerationResult is the single outcome of a request. Exactly one of the
// three shapes is produced: structured new email, plain body, or failure.
// Kind is kept for callers and tests but excluded from the wire shape,
// which carries only the error message.
type GenerationResult struct {
	Success    bool      `json:"success"`
	IsNewEmail bool      `json:"isNewEmail,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Body       string    `json:"body,omitempty"`
	Error      string    `json:"error,omitempty"`
	Kind       ErrorKind `json:"-"`
}

// NewEmailResult builds the structured subject+body success variant.
func NewEmailResult(subject, body string) GenerationResult {
	return GenerationResult{
		Success:    true,
		IsNewEmail: true,
		Subject:    subject,
		Body:       body,
	}
}

// BodyResult builds the plain-body success variant.
func BodyResult(body string) GenerationResult {
	return GenerationResult{
		Success: true,
		Body:    body,
	}
}

// Failure builds the failure variant for the given kind and message.
func Failure(kind ErrorKind, message string) GenerationResult {
	return GenerationResult{
		Success: false,
		Error:   message,
		Kind:    kind,
	}
}
