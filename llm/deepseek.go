// DeepSeek provider implementation using go-openai library.
//
// Information Hiding:
// - Uses OpenAI-compatible API with different base URL
// - Shares request conversion and status classification with OpenAIProvider

package llm

import (
	"time"
)

const deepseekBaseURL = "https://api.deepseek.com/v1"

// NewDeepSeekProvider creates a new DeepSeek provider.
// DeepSeek speaks the OpenAI chat-completions protocol, so the provider is
// an OpenAIProvider pointed at the DeepSeek endpoint.
func NewDeepSeekProvider(apiKey, model string, maxTokens uint32, timeout time.Duration) *OpenAIProvider {
	p := NewOpenAIProvider(apiKey, model, maxTokens, timeout, deepseekBaseURL)
	p.name = "deepseek"
	return p
}
