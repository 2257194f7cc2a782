// Package cli provides the cobra command tree for cinematch.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose     bool
	catalogPath string
	configDir   string
)

// Deps holds the services the commands run against.
type Deps struct {
	Settings driving.SettingsService
	Catalog  driving.CatalogService

	// Posters is nil when poster lookup is disabled.
	Posters driving.PosterService

	// NewRecommender indexes a catalog and returns a service that ranks
	// count neighbours per query.
	NewRecommender func(catalog *domain.Catalog, count int) driving.RecommendService

	// Close releases stores opened by the bootstrap.
	Close func() error
}

// Bootstrap builds Deps for a config directory.
type Bootstrap func(configDir string) (*Deps, error)

var (
	deps      *Deps
	bootstrap Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "cinematch",
	Short: "Content-based movie recommendations",
	Long: `cinematch recommends movies similar to a title you type.

Each movie is described by its genres, cast and plot keywords. Descriptors are
weighted with TF-IDF and compared by cosine similarity; the closest titles
are returned.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupDeps,
	PersistentPostRunE: closeDeps,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"catalog to load (.csv, .parquet or \"store\"); overrides catalog.path")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding config.toml (default ~/.cinematch)")
}

// SetBootstrap sets the function used to build Deps before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command. Command output goes to stdout,
// warnings and errors to stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func setupDeps(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if deps != nil || bootstrap == nil {
		return nil
	}
	d, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	deps = d
	return nil
}

func closeDeps(_ *cobra.Command, _ []string) error {
	if deps == nil || deps.Close == nil {
		return nil
	}
	return deps.Close()
}

func requireDeps() error {
	if deps == nil {
		return errors.New("services not configured")
	}
	return nil
}

// resolveCatalogPath returns the --catalog flag or the configured path.
func resolveCatalogPath() (string, error) {
	if catalogPath != "" {
		return catalogPath, nil
	}
	if deps.Settings == nil {
		return "", errors.New("settings service not configured")
	}
	settings, err := deps.Settings.Get()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Catalog.Path, nil
}
