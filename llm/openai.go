// OpenAI provider implementation using go-openai library.
//
// Information Hiding:
// - API client initialization and authentication
// - Chat-completions request/response conversion
// - HTTP status classification

package llm

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider for OpenAI-compatible services.
type OpenAIProvider struct {
	client    *openai.Client
	name      string
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewOpenAIProvider creates a new OpenAI provider.
// baseURL overrides the default endpoint when non-empty (used by tests and
// by OpenAI-compatible services).
func NewOpenAIProvider(apiKey, model string, maxTokens uint32, timeout time.Duration, baseURL string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client:    openai.NewClientWithConfig(config),
		name:      "openai",
		model:     model,
		maxTokens: int(maxTokens),
		timeout:   timeout,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Model returns the current model.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Generate sends one chat completion request and returns the raw text.
func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               p.model,
		MaxCompletionTokens: p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", malformedError()
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError maps go-openai failures onto the error taxonomy.
// APIError carries a parsed server detail; RequestError covers non-JSON
// error bodies and keeps the raw wrapped error as the detail.
func classifyOpenAIError(err error) *Error {
	if isAborted(err) {
		return timeoutError()
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, reqErr.Error())
	}

	return transportError(err)
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
