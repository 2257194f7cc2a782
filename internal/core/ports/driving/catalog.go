package driving

import (
	"context"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// CatalogService loads and imports movie catalogs.
type CatalogService interface {
	// Load reads the catalog at path. The format is chosen from the file
	// extension, or domain.StoreCatalogPath for the imported catalog.
	Load(ctx context.Context, path string) (*domain.Catalog, error)

	// Import copies the catalog at path into the local store.
	Import(ctx context.Context, path string) (*domain.CatalogImport, error)

	// LastImport returns the most recent import run.
	LastImport(ctx context.Context) (*domain.CatalogImport, error)

	// Formats lists the supported catalog formats.
	Formats() []string
}
