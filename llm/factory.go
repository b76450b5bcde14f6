// Provider factory - builder API for constructing generation clients.
//
// Quick Start:
//
//	// Defaults: Anthropic, claude-sonnet-4-5, 2048 max tokens, 30s timeout
//	provider, err := llm.ProviderAnthropic.APIKey("sk-ant-...")
//
//	// Full configuration
//	provider, err := llm.NewProviderBuilder(llm.ProviderOpenAI).
//	    Model("gpt-4o").
//	    MaxTokens(1024).
//	    Timeout(10 * time.Second).
//	    APIKey("sk-...")

package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultMaxTokens bounds the generated output length.
const DefaultMaxTokens = 2048

// DefaultTimeout is the hard client-side limit on one generation request.
const DefaultTimeout = 30 * time.Second

// ProviderType represents supported generation services.
type ProviderType int

const (
	// ProviderAnthropic is the Anthropic provider (Claude models, the default).
	ProviderAnthropic ProviderType = iota
	// ProviderOpenAI is the OpenAI provider (GPT models).
	ProviderOpenAI
	// ProviderDeepSeek is the DeepSeek provider.
	ProviderDeepSeek
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini
)

// String returns the string representation of the provider type.
func (p ProviderType) String() string {
	switch p {
	case ProviderAnthropic:
		return "anthropic"
	case ProviderOpenAI:
		return "openai"
	case ProviderDeepSeek:
		return "deepseek"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// DefaultModel returns the default model for this provider.
func (p ProviderType) DefaultModel() string {
	switch p {
	case ProviderAnthropic:
		return "claude-sonnet-4-5"
	case ProviderOpenAI:
		return "gpt-4o"
	case ProviderDeepSeek:
		return "deepseek-chat"
	case ProviderGemini:
		return "gemini-2.5-flash"
	default:
		return ""
	}
}

// ParseProviderType parses a provider from string (case-insensitive).
func ParseProviderType(s string) (ProviderType, error) {
	switch strings.ToLower(s) {
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	case "openai", "gpt":
		return ProviderOpenAI, nil
	case "deepseek":
		return ProviderDeepSeek, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return 0, fmt.Errorf("unknown provider: %s", s)
	}
}

// APIKey creates a provider with an explicit API key and defaults for
// everything else.
func (p ProviderType) APIKey(key string) (Provider, error) {
	return NewProviderBuilder(p).APIKey(key)
}

// ProviderBuilder is a builder for configuring generation clients.
type ProviderBuilder struct {
	providerType ProviderType
	model        string
	maxTokens    uint32
	timeout      time.Duration
	baseURL      string
}

// NewProviderBuilder creates a new builder for the given provider.
func NewProviderBuilder(providerType ProviderType) *ProviderBuilder {
	return &ProviderBuilder{
		providerType: providerType,
	}
}

// Model sets the model to use.
func (b *ProviderBuilder) Model(model string) *ProviderBuilder {
	b.model = model
	return b
}

// MaxTokens sets the maximum output token bound.
func (b *ProviderBuilder) MaxTokens(tokens uint32) *ProviderBuilder {
	b.maxTokens = tokens
	return b
}

// Timeout sets the per-request client timeout.
func (b *ProviderBuilder) Timeout(d time.Duration) *ProviderBuilder {
	b.timeout = d
	return b
}

// BaseURL overrides the service endpoint. Supported for Anthropic and
// OpenAI-compatible providers; used by tests.
func (b *ProviderBuilder) BaseURL(url string) *ProviderBuilder {
	b.baseURL = url
	return b
}

// APIKey builds the provider with an explicit API key.
func (b *ProviderBuilder) APIKey(key string) (Provider, error) {
	model := b.model
	if model == "" {
		model = b.providerType.DefaultModel()
	}

	maxTokens := b.maxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	timeout := b.timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	switch b.providerType {
	case ProviderAnthropic:
		var opts []option.RequestOption
		if b.baseURL != "" {
			opts = append(opts, option.WithBaseURL(b.baseURL))
		}
		return NewAnthropicProvider(key, model, maxTokens, timeout, opts...), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(key, model, maxTokens, timeout, b.baseURL), nil
	case ProviderDeepSeek:
		return NewDeepSeekProvider(key, model, maxTokens, timeout), nil
	case ProviderGemini:
		return NewGeminiProvider(key, model, maxTokens, timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %v", b.providerType)
	}
}
