package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/validation"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyCatalogPath          = "catalog.path"
	keyRecommendCount       = "recommend.count"
	keyPostersEnabled       = "posters.enabled"
	keyPostersProvider      = "posters.provider"
	keyPostersAPIKey        = "posters.api_key"
	keyPostersBaseURL       = "posters.base_url"
	keyPostersPlaceholder   = "posters.placeholder_url"
	keyPostersRatePerSecond = "posters.rate_per_second"
	keyPostersTimeout       = "posters.timeout_seconds"
)

var settingKeys = []string{
	keyCatalogPath,
	keyRecommendCount,
	keyPostersEnabled,
	keyPostersProvider,
	keyPostersAPIKey,
	keyPostersBaseURL,
	keyPostersPlaceholder,
	keyPostersRatePerSecond,
	keyPostersTimeout,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			Path: s.getString(keyCatalogPath, defaults.Catalog.Path),
		},
		Recommend: domain.RecommendSettings{
			Count: s.getInt(keyRecommendCount, defaults.Recommend.Count),
		},
		Posters: domain.PosterSettings{
			Enabled:        s.getBool(keyPostersEnabled, defaults.Posters.Enabled),
			Provider:       s.getProvider(defaults.Posters.Provider),
			APIKey:         s.configStore.GetString(keyPostersAPIKey),
			BaseURL:        s.getString(keyPostersBaseURL, defaults.Posters.BaseURL),
			PlaceholderURL: s.getString(keyPostersPlaceholder, defaults.Posters.PlaceholderURL),
			RatePerSecond:  s.getFloat(keyPostersRatePerSecond, defaults.Posters.RatePerSecond),
			TimeoutSeconds: s.getInt(keyPostersTimeout, defaults.Posters.TimeoutSeconds),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := validation.Struct(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	for _, key := range settingKeys {
		value := settingValue(settings, key)
		if key == keyPostersAPIKey && value == "" {
			continue
		}
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	return nil
}

// Set parses value for key, validates the resulting settings and persists
// the single key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	typed, err := applySetting(settings, key, strings.TrimSpace(value))
	if err != nil {
		return err
	}

	if err := validation.Struct(settings); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes the stored value for key so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if !isSettingKey(key) {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validation.Struct(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// Value renders the current value of key, defaults applied.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	v := settingValue(settings, key)
	if v == nil {
		return "", fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	return fmt.Sprint(v), nil
}

func settingValue(settings *domain.AppSettings, key string) any {
	switch key {
	case keyCatalogPath:
		return settings.Catalog.Path
	case keyRecommendCount:
		return settings.Recommend.Count
	case keyPostersEnabled:
		return settings.Posters.Enabled
	case keyPostersProvider:
		return settings.Posters.Provider.String()
	case keyPostersAPIKey:
		return settings.Posters.APIKey
	case keyPostersBaseURL:
		return settings.Posters.BaseURL
	case keyPostersPlaceholder:
		return settings.Posters.PlaceholderURL
	case keyPostersRatePerSecond:
		return settings.Posters.RatePerSecond
	case keyPostersTimeout:
		return settings.Posters.TimeoutSeconds
	default:
		return nil
	}
}

// applySetting parses value into settings and returns the typed value to
// persist.
func applySetting(settings *domain.AppSettings, key, value string) (any, error) {
	switch key {
	case keyCatalogPath:
		settings.Catalog.Path = value
		return value, nil
	case keyRecommendCount:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer: %w", key, value, domain.ErrInvalidInput)
		}
		settings.Recommend.Count = n
		return n, nil
	case keyPostersEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a boolean: %w", key, value, domain.ErrInvalidInput)
		}
		settings.Posters.Enabled = b
		return b, nil
	case keyPostersProvider:
		settings.Posters.Provider = domain.PosterProvider(strings.ToLower(value))
		return settings.Posters.Provider.String(), nil
	case keyPostersAPIKey:
		settings.Posters.APIKey = value
		return value, nil
	case keyPostersBaseURL:
		settings.Posters.BaseURL = value
		return value, nil
	case keyPostersPlaceholder:
		settings.Posters.PlaceholderURL = value
		return value, nil
	case keyPostersRatePerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number: %w", key, value, domain.ErrInvalidInput)
		}
		settings.Posters.RatePerSecond = f
		return f, nil
	case keyPostersTimeout:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer: %w", key, value, domain.ErrInvalidInput)
		}
		settings.Posters.TimeoutSeconds = n
		return n, nil
	default:
		return nil, fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getProvider(defaultVal domain.PosterProvider) domain.PosterProvider {
	val := s.configStore.GetString(keyPostersProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.PosterProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
