// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Provider-specific model lookup
//
// The API key is deliberately NOT part of this package: credentials live in
// the persistent settings store and are fetched fresh per request.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default values applied when the environment leaves them unset.
const (
	DefaultProvider  = "anthropic"
	DefaultMaxTokens = 2048
	DefaultTimeout   = 30 * time.Second
)

// Settings holds all application configuration.
type Settings struct {
	Provider  string
	Model     string
	MaxTokens uint32
	Timeout   time.Duration
	DBPath    string
}

// Per-provider model environment variables and defaults.
var providerModels = map[string]struct {
	modelEnv     string
	defaultModel string
}{
	"anthropic": {"ANTHROPIC_MODEL", "claude-sonnet-4-5"},
	"openai":    {"OPENAI_MODEL", "gpt-4o"},
	"deepseek":  {"DEEPSEEK_MODEL", "deepseek-chat"},
	"gemini":    {"GEMINI_MODEL", "gemini-2.5-flash"},
}

// New creates settings from environment variables.
// Returns an error if the provider is unknown or a variable holds an
// invalid value.
func New() (Settings, error) {
	provider := os.Getenv("GHOSTWRITER_PROVIDER")
	if provider == "" {
		provider = DefaultProvider
	}

	info, ok := providerModels[provider]
	if !ok {
		return Settings{}, fmt.Errorf("unknown provider: %q", provider)
	}

	model := os.Getenv(info.modelEnv)
	if model == "" {
		model = info.defaultModel
	}

	maxTokens, err := getEnvUint32("GHOSTWRITER_MAX_TOKENS", DefaultMaxTokens)
	if err != nil {
		return Settings{}, err
	}

	timeoutSeconds, err := getEnvInt("GHOSTWRITER_TIMEOUT_SECONDS", int(DefaultTimeout/time.Second))
	if err != nil {
		return Settings{}, err
	}
	if timeoutSeconds <= 0 {
		return Settings{}, fmt.Errorf("invalid value for GHOSTWRITER_TIMEOUT_SECONDS: %d", timeoutSeconds)
	}

	dbPath := os.Getenv("GHOSTWRITER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Settings{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ghostwriter", "settings.db")
	}

	return Settings{
		Provider:  provider,
		Model:     model,
		MaxTokens: maxTokens,
		Timeout:   time.Duration(timeoutSeconds) * time.Second,
		DBPath:    dbPath,
	}, nil
}

// MustNew creates settings from the environment.
// Panics on invalid configuration. Use only when such errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// Environment variable helpers with proper error handling

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvUint32(key string, defaultVal uint32) (uint32, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return uint32(i), nil
}
