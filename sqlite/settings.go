package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/fwojciec/jobtailor"
)

// Compile-time interface verification.
var _ jobtailor.SettingsService = (*SettingsService)(nil)

// SettingsService implements jobtailor.SettingsService backed by SQLite.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// Settings key names per scope. Synced keys hold the small user-facing
// configuration; local keys hold the classifier floors.
const (
	keyAPIKey         = "apiKey"
	keyProvider       = "provider"
	keyAutoDetect     = "autoDetect"
	keyFloatingButton = "floatingButton"
	keyKeywordFloor   = "keywordFloor"
	keyStructureFloor = "structureFloor"
	keyElementFloor   = "elementFloor"
)

// Get returns the stored settings merged over jobtailor.DefaultSettings.
func (s *SettingsService) Get(ctx context.Context) (*jobtailor.Settings, error) {
	settings := jobtailor.DefaultSettings()

	rows, err := s.db.QueryContext(ctx, `SELECT scope, key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var scope, key, value string
		if err := rows.Scan(&scope, &key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		applySetting(settings, jobtailor.SettingsScope(scope), key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return settings, nil
}

// Save validates the settings and stores every field in its scope.
func (s *SettingsService) Save(ctx context.Context, settings *jobtailor.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		scope jobtailor.SettingsScope
		key   string
		value string
	}{
		{jobtailor.ScopeSync, keyAPIKey, settings.APIKey},
		{jobtailor.ScopeSync, keyProvider, settings.Provider},
		{jobtailor.ScopeSync, keyAutoDetect, strconv.FormatBool(settings.AutoDetect)},
		{jobtailor.ScopeSync, keyFloatingButton, strconv.FormatBool(settings.FloatingButton)},
		{jobtailor.ScopeLocal, keyKeywordFloor, strconv.Itoa(settings.KeywordFloor)},
		{jobtailor.ScopeLocal, keyStructureFloor, strconv.Itoa(settings.StructureFloor)},
		{jobtailor.ScopeLocal, keyElementFloor, strconv.Itoa(settings.ElementFloor)},
	}

	for _, v := range values {
		if err := s.SetValue(ctx, v.scope, v.key, v.value); err != nil {
			return err
		}
	}
	return nil
}

// GetValue returns a single raw value from the given scope.
// Returns ENOTFOUND if the key has never been set.
func (s *SettingsService) GetValue(ctx context.Context, scope jobtailor.SettingsScope, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE scope = ? AND key = ?
	`, string(scope), key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", jobtailor.Errorf(jobtailor.ENOTFOUND, "setting %q not found in scope %q", key, scope)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting: %w", err)
	}
	return value, nil
}

// SetValue stores a single raw value in the given scope.
func (s *SettingsService) SetValue(ctx context.Context, scope jobtailor.SettingsScope, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (scope, key, value) VALUES (?, ?, ?)
		ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value
	`, string(scope), key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

// applySetting copies one stored value onto the settings struct. Values
// that fail to parse keep the default.
func applySetting(settings *jobtailor.Settings, scope jobtailor.SettingsScope, key, value string) {
	switch scope {
	case jobtailor.ScopeSync:
		switch key {
		case keyAPIKey:
			settings.APIKey = value
		case keyProvider:
			settings.Provider = value
		case keyAutoDetect:
			if b, err := strconv.ParseBool(value); err == nil {
				settings.AutoDetect = b
			}
		case keyFloatingButton:
			if b, err := strconv.ParseBool(value); err == nil {
				settings.FloatingButton = b
			}
		}
	case jobtailor.ScopeLocal:
		switch key {
		case keyKeywordFloor:
			if n, err := strconv.Atoi(value); err == nil {
				settings.KeywordFloor = n
			}
		case keyStructureFloor:
			if n, err := strconv.Atoi(value); err == nil {
				settings.StructureFloor = n
			}
		case keyElementFloor:
			if n, err := strconv.Atoi(value); err == nil {
				settings.ElementFloor = n
			}
		}
	}
}
