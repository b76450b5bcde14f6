// Package orchestration ties the drafting pipeline together.
//
// One request flows through a linear state machine with no loops and no
// retries: credential check, prompt composition, a single generation call,
// response interpretation. Every path terminates in exactly one
// GenerationResult. A Handler holds no per-request state, so concurrent
// requests are independent: each gets its own timeout and cancellation.
package orchestration

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manitmishra/ghostwriter/interpret"
	"github.com/manitmishra/ghostwriter/llm"
	"github.com/manitmishra/ghostwriter/model"
	"github.com/manitmishra/ghostwriter/prompt"
	"github.com/manitmishra/ghostwriter/storage"
)

// missingKeyMessage instructs the user to configure a credential.
// No network call is made when this fires.
const missingKeyMessage = "API key not configured. Run 'ghostwriter config set-key' to set it up."

// ProviderFactory builds a generation client for the API key fetched at
// request time. Injected so tests can count and fake provider calls.
type ProviderFactory func(apiKey string) (llm.Provider, error)

// Handler orchestrates one drafting request end to end.
type Handler struct {
	store       storage.SettingsStore
	newProvider ProviderFactory
	logger      *zap.Logger
}

// NewHandler creates a request handler.
// A nil logger disables logging.
func NewHandler(store storage.SettingsStore, factory ProviderFactory, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:       store,
		newProvider: factory,
		logger:      logger,
	}
}

// HandleRequest runs the full pipeline for one request.
//
// Settings are snapshotted once at the start; nothing is written during the
// request. The result is always well-formed: classified failures come back
// as {success:false}, never as a Go error.
func (h *Handler) HandleRequest(ctx context.Context, req model.GenerationRequest) model.GenerationResult {
	log := h.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("mode", string(req.Mode)),
		zap.String("context_type", string(req.Context.Type)),
		zap.Int("thread_messages", len(req.Context.Messages)),
	)

	settings, err := h.store.Load(ctx)
	if err != nil {
		log.Error("failed to load settings", zap.Error(err))
		return model.Failure(model.ErrMissingCredential, "Could not read stored settings: "+err.Error())
	}

	apiKey := strings.TrimSpace(settings.APIKey)
	if apiKey == "" {
		log.Warn("request rejected: no API key configured")
		return model.Failure(model.ErrMissingCredential, missingKeyMessage)
	}

	toneID := req.Tone
	if toneID == "" {
		toneID = settings.Tone
	}
	tone := prompt.ParseTone(toneID)

	systemPrompt := prompt.BuildSystemPrompt(tone, req.Mode, req.Context.Type, settings.CustomTonePreferences)
	userMessage := prompt.BuildUserMessage(req.Draft, req.Context, req.Mode)
	log.Debug("prompts composed",
		zap.String("tone", tone.String()),
		zap.Int("system_prompt_len", len(systemPrompt)),
		zap.Int("user_message_len", len(userMessage)),
	)

	provider, err := h.newProvider(apiKey)
	if err != nil {
		log.Error("failed to build provider", zap.Error(err))
		return model.Failure(model.ErrRequestFailed, err.Error())
	}

	raw, err := provider.Generate(ctx, systemPrompt, userMessage)
	if err != nil {
		var genErr *llm.Error
		if errors.As(err, &genErr) {
			log.Warn("generation failed",
				zap.String("kind", string(genErr.Kind)),
				zap.String("error", genErr.Message),
			)
			return model.Failure(genErr.Kind, genErr.Message)
		}
		log.Error("generation failed", zap.Error(err))
		return model.Failure(model.ErrRequestFailed, err.Error())
	}

	result := interpret.Interpret(raw, req.Context.Type)
	log.Info("request completed",
		zap.Bool("is_new_email", result.IsNewEmail),
		zap.Int("body_len", len(result.Body)),
	)
	return result
}
