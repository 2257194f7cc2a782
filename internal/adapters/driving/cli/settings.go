package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the catalog, recommendation and poster settings.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. The value is validated before it is saved.

Keys:
  catalog.path              catalog file, or "store" for the imported catalog
  recommend.count           recommendations per query (1-50)
  posters.enabled           true or false
  posters.provider          omdb or none
  posters.api_key           OMDb API key
  posters.base_url          OMDb endpoint
  posters.placeholder_url   image shown when no poster is found
  posters.rate_per_second   maximum lookups per second
  posters.timeout_seconds   per-lookup timeout`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireDeps(); err != nil {
		return err
	}
	if deps.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := deps.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Path: %s\n", settings.Catalog.Path)
	cmd.Println()

	cmd.Println("[Recommend]")
	cmd.Printf("  Count: %d\n", settings.Recommend.Count)
	cmd.Println()

	cmd.Println("[Posters]")
	cmd.Printf("  Enabled: %t\n", settings.Posters.Enabled)
	cmd.Printf("  Provider: %s\n", settings.Posters.Provider.Description())
	if settings.Posters.Provider.RequiresAPIKey() {
		if settings.Posters.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Posters.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
		cmd.Printf("  Base URL: %s\n", settings.Posters.BaseURL)
		cmd.Printf("  Rate: %g/s\n", settings.Posters.RatePerSecond)
		cmd.Printf("  Timeout: %ds\n", settings.Posters.TimeoutSeconds)
	}
	cmd.Printf("  Placeholder: %s\n", settings.Posters.PlaceholderURL)
	cmd.Printf("  Status: %s\n", posterStatus(settings.Posters))

	if err := deps.Settings.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if err := requireDeps(); err != nil {
		return err
	}
	if deps.Settings == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	value, err := deps.Settings.Value(key)
	if err != nil {
		return fmt.Errorf("%w (keys: %s)", err, strings.Join(deps.Settings.Keys(), ", "))
	}
	if strings.HasSuffix(key, "api_key") && value != "" {
		value = maskAPIKey(value)
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := requireDeps(); err != nil {
		return err
	}
	if deps.Settings == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := deps.Settings.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (keys: %s)", err, strings.Join(deps.Settings.Keys(), ", "))
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	shown := value
	if strings.HasSuffix(key, "api_key") {
		shown = maskAPIKey(value)
	}
	cmd.Printf("%s = %s\n", key, shown)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if err := requireDeps(); err != nil {
		return err
	}
	if deps.Settings == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	if err := deps.Settings.Reset(key); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (keys: %s)", err, strings.Join(deps.Settings.Keys(), ", "))
		}
		return fmt.Errorf("failed to reset setting: %w", err)
	}

	value, err := deps.Settings.Value(key)
	if err != nil {
		return err
	}
	if strings.HasSuffix(key, "api_key") && value != "" {
		value = maskAPIKey(value)
	}
	cmd.Printf("%s = %s (default)\n", key, value)
	return nil
}

func posterStatus(p domain.PosterSettings) string {
	switch {
	case !p.Enabled:
		return "disabled"
	case p.IsConfigured():
		return "configured"
	case p.Provider == domain.PosterProviderNone:
		return "placeholders only"
	default:
		return "not configured (placeholders only)"
	}
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
