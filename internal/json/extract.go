// Package json provides tolerant JSON extraction for LLM responses.
//
// Models asked for raw JSON frequently wrap it in markdown code fences or
// surrounding whitespace anyway. This package strips those patterns and
// decodes what remains, reporting decode failure as an ordinary error so
// callers can fall back instead of aborting.
package json

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFence removes a leading triple-backtick fence line (with or
// without a language tag such as "json") and a trailing fence line from s.
// Text without a leading fence is returned trimmed but otherwise unchanged.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line, language tag included.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		// Fence with no newline after it, e.g. "```json{...}```".
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
	}

	trimmed = strings.TrimSpace(trimmed)
	if strings.HasSuffix(trimmed, "```") {
		if idx := strings.LastIndexByte(trimmed, '\n'); idx >= 0 && strings.TrimSpace(trimmed[idx:]) == "```" {
			trimmed = trimmed[:idx]
		} else {
			trimmed = strings.TrimSuffix(trimmed, "```")
		}
	}

	return strings.TrimSpace(trimmed)
}

// DecodeObject strips fence markers from s and unmarshals the remainder as
// a single JSON object into T. The error is recoverable by design: callers
// treat it as "not structured output", never as a request failure.
func DecodeObject[T any](s string) (T, error) {
	var result T
	stripped := StripCodeFence(s)
	if err := json.Unmarshal([]byte(stripped), &result); err != nil {
		preview := stripped
		if len(preview) > 100 {
			preview = preview[:100] + "..."
		}
		return result, fmt.Errorf("response is not a JSON object: %q: %w", preview, err)
	}
	return result, nil
}
