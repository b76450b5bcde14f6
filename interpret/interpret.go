// Package interpret turns raw generated text into a GenerationResult.
//
// Compose requests ask the model for a {"subject", "body"} JSON object, but
// models sometimes ignore formatting instructions. Interpretation therefore
// degrades gracefully: anything that fails structured parsing becomes a
// plain body, never an error.
package interpret

import (
	"strings"

	llmjson "github.com/manitmishra/ghostwriter/internal/json"
	"github.com/manitmishra/ghostwriter/model"
)

// newEmail is the structured shape requested for compose output.
type newEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Interpret classifies raw model output for the given context type.
//
// Reply output is always a plain body, returned unchanged. Compose output
// is parsed as a subject+body object after stripping any code fence the
// model wrapped it in; if parsing fails or either field is empty, the
// ORIGINAL raw text (not the stripped text) is returned as a plain body.
func Interpret(raw string, contextType model.ContextType) model.GenerationResult {
	if contextType != model.ContextCompose {
		return model.BodyResult(raw)
	}

	email, err := llmjson.DecodeObject[newEmail](raw)
	if err != nil {
		return model.BodyResult(raw)
	}
	if strings.TrimSpace(email.Subject) == "" || strings.TrimSpace(email.Body) == "" {
		return model.BodyResult(raw)
	}

	return model.NewEmailResult(email.Subject, email.Body)
}
