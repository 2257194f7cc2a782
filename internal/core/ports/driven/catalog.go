package driven

import (
	"context"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// CatalogSource reads a movie catalog.
type CatalogSource interface {
	// Load reads every row in source order.
	// Returns an error wrapping domain.ErrLoad if the source is unreadable
	// or malformed.
	Load(ctx context.Context) (*domain.Catalog, error)
}

// CatalogSourceBuilder creates a CatalogSource for a location such as a
// file path.
type CatalogSourceBuilder func(location string) (CatalogSource, error)

// CatalogStore keeps a local copy of an imported catalog.
type CatalogStore interface {
	CatalogSource

	// ReplaceCatalog atomically swaps the stored catalog and records the
	// import run.
	ReplaceCatalog(ctx context.Context, run domain.CatalogImport, catalog *domain.Catalog) error

	// LastImport returns the most recent import run.
	// Returns domain.ErrNotFound if nothing has been imported.
	LastImport(ctx context.Context) (*domain.CatalogImport, error)
}
