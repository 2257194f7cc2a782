package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/similarity"
)

var catalogInfoJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the movie catalog",
	Long: `Import a catalog into the local store or inspect the configured one.

Catalogs are CSV or Parquet files with a title column (movie_title or title)
and a descriptor column (comb or combined_text).`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Copy a catalog file into the local store",
	Long: `Reads a CSV or Parquet catalog and replaces the stored catalog with it.
Use --catalog store (or catalog.path = "store") to recommend from it.

Without a path, the configured catalog.path is imported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogImport,
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog statistics",
	RunE:  runCatalogInfo,
}

func init() {
	catalogInfoCmd.Flags().BoolVar(&catalogInfoJSON, "json", false, "output as JSON")
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogInfoCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if err := requireDeps(); err != nil {
		return err
	}
	if deps.Catalog == nil {
		return errors.New("catalog service not configured")
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := resolveCatalogPath()
		if err != nil {
			return err
		}
		path = p
	}
	if domain.IsStoreCatalog(path) {
		return fmt.Errorf("%w: cannot import the store into itself", domain.ErrInvalidInput)
	}

	run, err := deps.Catalog.Import(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d movies from %s\n", run.Rows, run.Source)
	cmd.Printf("  Import ID: %s\n", run.ID)
	return nil
}

// catalogInfo is the JSON form of catalog info.
type catalogInfo struct {
	Path             string     `json:"path"`
	Entries          int        `json:"entries"`
	EmptyDescriptors int        `json:"empty_descriptors"`
	VocabularySize   int        `json:"vocabulary_size"`
	Formats          []string   `json:"formats"`
	LastImportID     string     `json:"last_import_id,omitempty"`
	LastImportSource string     `json:"last_import_source,omitempty"`
	LastImportRows   int        `json:"last_import_rows,omitempty"`
	LastImportedAt   *time.Time `json:"last_imported_at,omitempty"`
}

func runCatalogInfo(cmd *cobra.Command, _ []string) error {
	if err := requireDeps(); err != nil {
		return err
	}

	if deps.Catalog == nil {
		return errors.New("catalog service not configured")
	}

	path, err := resolveCatalogPath()
	if err != nil {
		return err
	}
	catalog, err := deps.Catalog.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	stats := similarity.Describe(catalog)
	info := catalogInfo{
		Path:             path,
		Entries:          stats.Entries,
		EmptyDescriptors: stats.EmptyDescriptors,
		VocabularySize:   stats.VocabularySize,
		Formats:          deps.Catalog.Formats(),
	}

	last, err := deps.Catalog.LastImport(cmd.Context())
	switch {
	case err == nil:
		info.LastImportID = last.ID
		info.LastImportSource = last.Source
		info.LastImportRows = last.Rows
		info.LastImportedAt = &last.ImportedAt
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("failed to read last import: %w", err)
	}

	if catalogInfoJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog info: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Catalog")
	cmd.Println("=======")
	cmd.Printf("  Path:              %s\n", info.Path)
	cmd.Printf("  Movies:            %d\n", info.Entries)
	cmd.Printf("  Empty descriptors: %d\n", info.EmptyDescriptors)
	cmd.Printf("  Vocabulary size:   %d\n", info.VocabularySize)
	cmd.Printf("  Formats:           %s\n", strings.Join(info.Formats, ", "))
	cmd.Println()
	cmd.Println("[Last import]")
	if info.LastImportedAt == nil {
		cmd.Println("  (none)")
		return nil
	}
	cmd.Printf("  ID:     %s\n", info.LastImportID)
	cmd.Printf("  Source: %s\n", info.LastImportSource)
	cmd.Printf("  Rows:   %d\n", info.LastImportRows)
	cmd.Printf("  At:     %s\n", info.LastImportedAt.Local().Format(time.RFC1123))
	return nil
}
