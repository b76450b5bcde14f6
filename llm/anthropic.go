// Anthropic provider implementation using official anthropic-sdk-go.
//
// Information Hiding:
// - API endpoint and authentication headers (x-api-key, anthropic-version)
// - Request/response format for Anthropic Messages API
// - HTTP status classification

package llm

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider for Anthropic Claude.
// This is the default provider; the original deployment talks to the
// Anthropic Messages endpoint exclusively.
type AnthropicProvider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// NewAnthropicProvider creates a new Anthropic provider.
// SDK retries are disabled: the pipeline makes exactly one attempt per
// request. extraOpts exists for tests to redirect the base URL.
func NewAnthropicProvider(apiKey, model string, maxTokens uint32, timeout time.Duration, extraOpts ...option.RequestOption) *AnthropicProvider {
	opts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, extraOpts...)

	return &AnthropicProvider{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(maxTokens),
		timeout:   timeout,
	}
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Model returns the current model.
func (p *AnthropicProvider) Model() string {
	return p.model
}

// Generate sends one generation request and returns the raw text.
// The in-flight request is actively cancelled when the timeout elapses.
func (p *AnthropicProvider) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	})
	if err != nil {
		return "", classifyAnthropicError(err)
	}

	content := ""
	for _, block := range message.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += variant.Text
		}
	}
	if content == "" {
		return "", malformedError()
	}

	return content, nil
}

// classifyAnthropicError maps SDK failures onto the error taxonomy.
func classifyAnthropicError(err error) *Error {
	if isAborted(err) {
		return timeoutError()
	}

	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return classifyStatus(apierr.StatusCode, apierr.Error())
	}

	return transportError(err)
}

// Verify AnthropicProvider implements Provider
var _ Provider = (*AnthropicProvider)(nil)
