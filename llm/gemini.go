// Gemini provider implementation using google.golang.org/genai.
//
// Information Hiding:
// - Client initialization (deferred error reporting preserves the
//   constructor signature shared by all providers)
// - Content conversion and system-instruction handling
// - HTTP status classification via genai.APIError

package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini.
type GeminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int32
	timeout   time.Duration
	initErr   error
}

// NewGeminiProvider creates a new Gemini provider.
// If client initialization fails, the error is stored and returned on
// first use.
func NewGeminiProvider(apiKey, model string, maxTokens uint32, timeout time.Duration) *GeminiProvider {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &GeminiProvider{
			model:     model,
			maxTokens: int32(maxTokens),
			timeout:   timeout,
			initErr:   fmt.Errorf("failed to initialize Gemini client: %w", err),
		}
	}

	return &GeminiProvider{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
		timeout:   timeout,
	}
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Model returns the current model.
func (p *GeminiProvider) Model() string {
	return p.model
}

// Generate sends one generation request and returns the raw text.
func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if p.initErr != nil {
		return "", transportError(p.initErr)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		MaxOutputTokens:   p.maxTokens,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userMessage, genai.RoleUser),
	}

	response, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	content := response.Text()
	if content == "" {
		return "", malformedError()
	}

	return content, nil
}

// classifyGeminiError maps genai failures onto the error taxonomy.
func classifyGeminiError(err error) *Error {
	if isAborted(err) {
		return timeoutError()
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, apiErr.Message)
	}

	return transportError(err)
}

// Verify GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)
