// Package llm provides generation clients for the supported text services.
//
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Mapping of transport and HTTP outcomes onto the error taxonomy
//
// Providers make exactly one attempt per request. Retry policy, if any,
// belongs to the caller.
package llm

import (
	"context"
)

// Provider is the abstract interface for text generation services.
// Generate sends one system prompt and one user message, applies the
// client-side timeout, and returns the raw generated text.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the current model being used.
	Model() string

	// Generate performs a single generation request.
	// Failures are returned as *Error carrying the classified kind.
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
