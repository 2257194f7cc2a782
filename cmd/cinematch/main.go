// Command cinematch recommends movies similar to a typed title.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/cinematch/internal/adapters/driven/catalog/csvfile"
	"github.com/custodia-labs/cinematch/internal/adapters/driven/catalog/parquetfile"
	"github.com/custodia-labs/cinematch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cinematch/internal/adapters/driven/metadata/null"
	"github.com/custodia-labs/cinematch/internal/adapters/driven/metadata/omdb"
	"github.com/custodia-labs/cinematch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/cli"
	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/core/services"
	"github.com/custodia-labs/cinematch/internal/logger"
	"github.com/custodia-labs/cinematch/internal/similarity"
)

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires adapters to services for a config directory.
func bootstrap(configDir string) (*cli.Deps, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := settingsService.Validate(); err != nil {
		logger.Warn("invalid settings in %s: %v", configStore.Path(), err)
	}

	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("store: %s", store.Path())

	catalogService := services.NewCatalogService(store.CatalogStore())
	catalogService.Register(".csv", csvfile.Builder)
	catalogService.Register(".parquet", parquetfile.Builder)

	posterService, err := newPosterService(settings.Posters, store.PosterCache())
	if err != nil {
		store.Close()
		return nil, err
	}

	return &cli.Deps{
		Settings:       settingsService,
		Catalog:        catalogService,
		Posters:        posterService,
		NewRecommender: newRecommender,
		Close:          store.Close,
	}, nil
}

// newPosterService returns nil when posters are disabled. An unconfigured
// provider falls back to placeholders.
func newPosterService(settings domain.PosterSettings, cache driven.PosterCache) (driving.PosterService, error) {
	if !settings.Enabled {
		return nil, nil
	}

	var lookup driven.PosterLookup
	if settings.IsConfigured() {
		client, err := omdb.NewClient(omdb.Config{
			APIKey:        settings.APIKey,
			BaseURL:       settings.BaseURL,
			Timeout:       time.Duration(settings.TimeoutSeconds) * time.Second,
			RatePerSecond: settings.RatePerSecond,
		})
		if err != nil {
			return nil, fmt.Errorf("creating poster client: %w", err)
		}
		lookup = client
	} else {
		lookup = null.NewProvider(unconfiguredReason(settings))
	}
	logger.Debug("poster provider: %s", lookup.Name())

	return services.NewPosterService(lookup,
		services.WithPosterCache(cache),
		services.WithPlaceholder(settings.PlaceholderURL),
	), nil
}

func unconfiguredReason(settings domain.PosterSettings) string {
	if settings.Provider.RequiresAPIKey() && settings.APIKey == "" {
		return "posters.api_key is not set"
	}
	return "poster provider " + settings.Provider.String()
}

func newRecommender(catalog *domain.Catalog, count int) driving.RecommendService {
	return services.NewRecommendService(similarity.Build(catalog), services.WithCount(count))
}
