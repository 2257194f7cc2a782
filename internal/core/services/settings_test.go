package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cinematch/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
	assert.Equal(t, *domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("catalog.path", "films.parquet")
	_ = store.Set("recommend.count", int64(8))
	_ = store.Set("posters.enabled", false)
	_ = store.Set("posters.provider", "none")
	_ = store.Set("posters.rate_per_second", 2.5)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "films.parquet", settings.Catalog.Path)
	assert.Equal(t, 8, settings.Recommend.Count)
	assert.False(t, settings.Posters.Enabled)
	assert.Equal(t, domain.PosterProviderNone, settings.Posters.Provider)
	assert.InDelta(t, 2.5, settings.Posters.RatePerSecond, 1e-9)
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("posters.provider", "tmdb")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.PosterProviderOMDb, settings.Posters.Provider)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Recommend.Count = 10
	settings.Posters.APIKey = "secret"

	require.NoError(t, service.Save(settings))

	assert.Equal(t, 10, store.GetInt("recommend.count"))
	assert.Equal(t, "secret", store.GetString("posters.api_key"))
	assert.Equal(t, "omdb", store.GetString("posters.provider"))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestSettingsService_Save_EmptyAPIKeyNotWritten(t *testing.T) {
	store := memory.NewConfigStore()

	require.NoError(t, NewSettingsService(store).Save(domain.DefaultAppSettings()))

	_, exists := store.Get("posters.api_key")
	assert.False(t, exists)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	store := memory.NewConfigStore()
	settings := domain.DefaultAppSettings()
	settings.Recommend.Count = 0

	err := NewSettingsService(store).Save(settings)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, exists := store.Get("recommend.count")
	assert.False(t, exists)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  any
	}{
		{"catalog.path", "store", "store"},
		{"recommend.count", "7", 7},
		{"posters.enabled", "false", false},
		{"posters.provider", "NONE", "none"},
		{"posters.api_key", " abc123 ", "abc123"},
		{"posters.base_url", "http://localhost:8080/", "http://localhost:8080/"},
		{"posters.placeholder_url", "https://example.com/none.png", "https://example.com/none.png"},
		{"posters.rate_per_second", "0.5", 0.5},
		{"posters.timeout_seconds", "30", 30},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := memory.NewConfigStore()
			require.NoError(t, NewSettingsService(store).Set(tt.key, tt.value))

			got, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"not an integer", "recommend.count", "five"},
		{"out of range", "recommend.count", "500"},
		{"not a boolean", "posters.enabled", "sometimes"},
		{"unknown provider", "posters.provider", "tmdb"},
		{"bad url", "posters.base_url", "::nope"},
		{"not a number", "posters.rate_per_second", "fast"},
		{"empty path", "catalog.path", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			err := NewSettingsService(store).Set(tt.key, tt.value)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			_, exists := store.Get(tt.key)
			assert.False(t, exists)
		})
	}
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	assert.NoError(t, service.Validate())

	_ = store.Set("recommend.count", 99)
	assert.Error(t, service.Validate())
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Len(t, keys, 9)
	assert.Equal(t, "catalog.path", keys[0])

	keys[0] = "mutated"
	assert.Equal(t, "catalog.path", service.Keys()[0])
}

func TestSettingsService_Value(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("recommend.count", int64(8))
	service := NewSettingsService(store)

	tests := []struct {
		key  string
		want string
	}{
		{"recommend.count", "8"},
		{"posters.enabled", "true"},
		{"posters.provider", "omdb"},
		{"posters.rate_per_second", "5"},
		{"posters.api_key", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := service.Value(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := service.Value("unknown")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Reset(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"recommend.count":  9,
		"posters.api_key":  "secret",
		"posters.provider": "none",
	})
	service := NewSettingsService(store)

	require.NoError(t, service.Reset("recommend.count"))
	require.NoError(t, service.Reset("posters.api_key"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRecommendationCount, settings.Recommend.Count)
	assert.Empty(t, settings.Posters.APIKey)
	assert.Equal(t, domain.PosterProviderNone, settings.Posters.Provider)

	err = service.Reset("catalog.nope")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
