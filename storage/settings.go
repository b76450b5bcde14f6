// Package storage provides the persistent settings store.
//
// Information Hiding:
// - SQLite connection management hidden behind the SettingsStore interface
// - Schema details encapsulated
// - Thread-safe via sql.DB's built-in connection pooling
//
// The store plays the role of the host platform's key-value storage: it
// holds the API key, the selected tone, and custom tone preferences.
// Request handling reads a snapshot once per request and never writes.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Setting keys.
const (
	KeyAPIKey          = "apiKey"
	KeyTone            = "tone"
	KeyCustomTonePrefs = "customTonePreferences"
)

// Settings is a read-only snapshot of the stored configuration.
// Missing keys yield empty strings.
type Settings struct {
	APIKey                string
	Tone                  string
	CustomTonePreferences string
}

// SettingsStore reads and writes persisted settings.
type SettingsStore interface {
	// Load returns a snapshot of all known settings.
	Load(ctx context.Context) (Settings, error)

	// Get returns the value for key, or "" when the key is unset.
	Get(ctx context.Context, key string) (string, error)

	// Put stores the value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}

// SqliteSettings implements SettingsStore using a SQLite database file.
// Thread-safe: sql.DB handles connection pooling and concurrent access.
type SqliteSettings struct {
	db *sql.DB
}

// OpenSqlite opens or creates a settings database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteSettings, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store := &SqliteSettings{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// NewSqliteInMemory creates an in-memory settings store (useful for testing).
func NewSqliteInMemory() (*SqliteSettings, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}

	store := &SqliteSettings{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SqliteSettings) Close() error {
	return s.db.Close()
}

func (s *SqliteSettings) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns a snapshot of all known settings.
func (s *SqliteSettings) Load(ctx context.Context) (Settings, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	var settings Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case KeyAPIKey:
			settings.APIKey = value
		case KeyTone:
			settings.Tone = value
		case KeyCustomTonePrefs:
			settings.CustomTonePreferences = value
		}
	}
	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	return settings, nil
}

// Get returns the value for key, or "" when the key is unset.
func (s *SqliteSettings) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

// Put stores the value under key, replacing any previous value.
func (s *SqliteSettings) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to store setting %q: %w", key, err)
	}
	return nil
}

// Verify SqliteSettings implements SettingsStore
var _ SettingsStore = (*SqliteSettings)(nil)
