package jobtailor

import (
	"context"
	"strings"
)

// SettingsScope separates the two storage tiers. Synced settings are small
// values that follow the user across machines; local settings are larger
// blobs and counters that stay on one machine.
type SettingsScope string

// SettingsScope constants.
const (
	ScopeSync  SettingsScope = "sync"
	ScopeLocal SettingsScope = "local"
)

// Provider selects the LLM backend used for optimization.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Settings holds user configuration. APIKey and Provider gate optimization;
// the detector fields tune classification behavior.
type Settings struct {
	APIKey         string `json:"apiKey"`
	Provider       string `json:"provider"`
	AutoDetect     bool   `json:"autoDetect"`
	FloatingButton bool   `json:"floatingButton"`

	// KeywordFloor, StructureFloor, and ElementFloor override the
	// classifier's per-layer thresholds when positive.
	KeywordFloor   int `json:"keywordFloor"`
	StructureFloor int `json:"structureFloor"`
	ElementFloor   int `json:"elementFloor"`
}

// DefaultSettings returns the settings applied before the user saves any.
func DefaultSettings() *Settings {
	return &Settings{
		Provider:       ProviderAnthropic,
		AutoDetect:     true,
		FloatingButton: true,
		KeywordFloor:   1,
		StructureFloor: 1,
		ElementFloor:   1,
	}
}

// Validate returns an error if the settings are inconsistent.
func (s *Settings) Validate() error {
	switch s.Provider {
	case ProviderAnthropic:
		if s.APIKey != "" && !strings.HasPrefix(s.APIKey, "sk-ant-") {
			return Errorf(EINVALID, "anthropic API key must start with sk-ant-")
		}
	case ProviderGemini:
	default:
		return Errorf(EINVALID, "unknown provider %q", s.Provider)
	}
	if s.KeywordFloor < 0 || s.StructureFloor < 0 || s.ElementFloor < 0 {
		return Errorf(EINVALID, "detection floors must not be negative")
	}
	return nil
}

// SettingsService persists user settings across both scopes.
type SettingsService interface {
	// Get returns the stored settings merged over DefaultSettings.
	Get(ctx context.Context) (*Settings, error)

	// Save validates and stores the settings.
	Save(ctx context.Context, settings *Settings) error

	// GetValue returns a single raw value from the given scope.
	// Returns ENOTFOUND if the key has never been set.
	GetValue(ctx context.Context, scope SettingsScope, key string) (string, error)

	// SetValue stores a single raw value in the given scope.
	SetValue(ctx context.Context, scope SettingsScope, key, value string) error
}
