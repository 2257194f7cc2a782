package domain

const unknownDescription = "Unknown"

// PosterProvider identifies the metadata service used for poster lookups.
type PosterProvider string

// Available poster providers.
const (
	// PosterProviderOMDb is the OMDb HTTP API.
	PosterProviderOMDb PosterProvider = "omdb"

	// PosterProviderNone disables lookups; every title gets the placeholder.
	PosterProviderNone PosterProvider = "none"
)

// IsValid returns true if the provider is recognised.
func (p PosterProvider) IsValid() bool {
	switch p {
	case PosterProviderOMDb, PosterProviderNone:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p PosterProvider) RequiresAPIKey() bool {
	return p == PosterProviderOMDb
}

// String returns the string representation.
func (p PosterProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p PosterProvider) Description() string {
	switch p {
	case PosterProviderOMDb:
		return "OMDb (cloud)"
	case PosterProviderNone:
		return "None (placeholders only)"
	default:
		return unknownDescription
	}
}

// CatalogSettings holds catalog source configuration.
type CatalogSettings struct {
	// Path is a .csv or .parquet file, or StoreCatalogPath.
	Path string `validate:"required"`
}

// RecommendSettings holds ranking configuration.
type RecommendSettings struct {
	// Count is the number of recommendations per query.
	Count int `validate:"min=1,max=50"`
}

// PosterSettings holds poster lookup configuration.
type PosterSettings struct {
	// Enabled turns poster lookups on or off.
	Enabled bool

	// Provider is the metadata service.
	Provider PosterProvider `validate:"required,posterprovider"`

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL is the provider API endpoint.
	BaseURL string `validate:"required,url"`

	// PlaceholderURL is shown when a lookup fails.
	PlaceholderURL string `validate:"required,url"`

	// RatePerSecond throttles outgoing lookups.
	RatePerSecond float64 `validate:"gt=0,lte=100"`

	// TimeoutSeconds bounds a single lookup request.
	TimeoutSeconds int `validate:"min=1,max=120"`
}

// IsConfigured returns true if lookups can actually be performed.
func (p PosterSettings) IsConfigured() bool {
	if !p.Enabled || !p.Provider.IsValid() || p.Provider == PosterProviderNone {
		return false
	}
	if p.Provider.RequiresAPIKey() && p.APIKey == "" {
		return false
	}
	return true
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Catalog holds catalog source settings.
	Catalog CatalogSettings

	// Recommend holds ranking settings.
	Recommend RecommendSettings

	// Posters holds poster lookup settings.
	Posters PosterSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Poster lookups are enabled but stay unconfigured until an API key is set,
// so every title falls back to the placeholder image.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Catalog: CatalogSettings{
			Path: "movies.csv",
		},
		Recommend: RecommendSettings{
			Count: DefaultRecommendationCount,
		},
		Posters: PosterSettings{
			Enabled:        true,
			Provider:       PosterProviderOMDb,
			BaseURL:        "https://www.omdbapi.com/",
			PlaceholderURL: DefaultPlaceholderURL,
			RatePerSecond:  5,
			TimeoutSeconds: 10,
		},
	}
}
