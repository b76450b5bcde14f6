// Command execution for CLI commands.
//
// Information Hiding:
// - Settings store and provider setup hidden
// - Output formatting hidden

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/manitmishra/ghostwriter/llm"
	"github.com/manitmishra/ghostwriter/model"
	"github.com/manitmishra/ghostwriter/orchestration"
	"github.com/manitmishra/ghostwriter/storage"
)

// Options holds CLI execution options.
type Options struct {
	Provider  string
	Model     string
	MaxTokens uint32
	Timeout   time.Duration
	DBPath    string
	Verbose   bool
}

// Draft runs one drafting request and writes the GenerationResult JSON to
// out. Classified failures are part of the result object, not an error;
// the returned error covers only setup and IO problems.
func Draft(ctx context.Context, req model.GenerationRequest, opts Options, out io.Writer) error {
	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	store, err := storage.OpenSqlite(opts.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	providerType, err := llm.ParseProviderType(opts.Provider)
	if err != nil {
		return err
	}

	factory := func(apiKey string) (llm.Provider, error) {
		return llm.NewProviderBuilder(providerType).
			Model(opts.Model).
			MaxTokens(opts.MaxTokens).
			Timeout(opts.Timeout).
			APIKey(apiKey)
	}

	handler := orchestration.NewHandler(store, factory, logger)
	result := handler.HandleRequest(ctx, req)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// SetSetting stores one setting value.
func SetSetting(ctx context.Context, dbPath, key, value string) error {
	store, err := storage.OpenSqlite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Put(ctx, key, value)
}

// ShowSettings prints the stored settings with the API key masked.
func ShowSettings(ctx context.Context, dbPath string, out io.Writer) error {
	store, err := storage.OpenSqlite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	settings, err := store.Load(ctx)
	if err != nil {
		return err
	}

	tone := settings.Tone
	if tone == "" {
		tone = "Regular (default)"
	}

	fmt.Fprintf(out, "API key: %s\n", maskKey(settings.APIKey))
	fmt.Fprintf(out, "Tone: %s\n", tone)
	if settings.CustomTonePreferences != "" {
		fmt.Fprintf(out, "Custom tone preferences: %s\n", settings.CustomTonePreferences)
	}
	return nil
}

// maskKey hides all but a short prefix and suffix of the API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 14 {
		return "(set)"
	}
	return key[:10] + "..." + key[len(key)-4:]
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// ReadContextFile loads a thread-context JSON file. An empty path yields a
// compose context with no messages.
func ReadContextFile(path string) (model.Context, error) {
	if path == "" {
		return model.Context{Type: model.ContextCompose}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Context{}, fmt.Errorf("failed to read context file: %w", err)
	}

	var ctx model.Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return model.Context{}, fmt.Errorf("failed to parse context file: %w", err)
	}
	if ctx.Type == "" {
		ctx.Type = model.ContextCompose
	}
	return ctx, nil
}
