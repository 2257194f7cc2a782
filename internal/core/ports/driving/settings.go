package driving

import "github.com/custodia-labs/cinematch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for the named key, validates and persists it.
	// Returns domain.ErrInvalidInput for unknown keys or bad values.
	Set(key, value string) error

	// Reset drops the stored value for key so the default applies.
	// Returns domain.ErrInvalidInput for unknown keys.
	Reset(key string) error

	// Value renders the current value of key.
	// Returns domain.ErrInvalidInput for unknown keys.
	Value(key string) (string, error)

	// Keys returns every settable key in display order.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
