package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService loads catalogs through format-specific sources and copies
// them into the local store.
type CatalogService struct {
	builders map[string]driven.CatalogSourceBuilder
	store    driven.CatalogStore // nil = import unavailable
}

// NewCatalogService creates a catalog service. store may be nil.
func NewCatalogService(store driven.CatalogStore) *CatalogService {
	return &CatalogService{
		builders: make(map[string]driven.CatalogSourceBuilder),
		store:    store,
	}
}

// Register adds a source builder for a file extension such as ".csv".
func (s *CatalogService) Register(ext string, builder driven.CatalogSourceBuilder) {
	s.builders[strings.ToLower(ext)] = builder
}

// Formats lists the registered extensions, plus domain.StoreCatalogPath when
// a store is configured.
func (s *CatalogService) Formats() []string {
	formats := make([]string, 0, len(s.builders)+1)
	for ext := range s.builders {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	if s.store != nil {
		formats = append(formats, domain.StoreCatalogPath)
	}
	return formats
}

// Load reads the catalog at path.
func (s *CatalogService) Load(ctx context.Context, path string) (*domain.Catalog, error) {
	logger.Section("Loading Catalog")
	start := time.Now()

	source, err := s.source(path)
	if err != nil {
		return nil, err
	}

	catalog, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	logger.Debug("loaded %d entries from %s (%s)", catalog.Len(), path, time.Since(start))
	return catalog, nil
}

// Import copies the catalog at path into the local store and records the run.
func (s *CatalogService) Import(ctx context.Context, path string) (*domain.CatalogImport, error) {
	if s.store == nil {
		return nil, fmt.Errorf("import: no catalog store: %w", domain.ErrUnsupportedType)
	}
	if domain.IsStoreCatalog(path) {
		return nil, fmt.Errorf("import: cannot import the store into itself: %w", domain.ErrInvalidInput)
	}

	catalog, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	source := path
	if abs, err := filepath.Abs(path); err == nil {
		source = abs
	}

	run := domain.CatalogImport{
		ID:         uuid.NewString(),
		Source:     source,
		Rows:       catalog.Len(),
		ImportedAt: time.Now().UTC(),
	}
	if err := s.store.ReplaceCatalog(ctx, run, catalog); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	logger.Info("imported %d entries from %s as %s", run.Rows, run.Source, run.ID)
	return &run, nil
}

// LastImport returns the most recent import run.
func (s *CatalogService) LastImport(ctx context.Context) (*domain.CatalogImport, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.LastImport(ctx)
}

func (s *CatalogService) source(path string) (driven.CatalogSource, error) {
	if domain.IsStoreCatalog(path) {
		if s.store == nil {
			return nil, fmt.Errorf("%w: no catalog store configured", domain.ErrLoad)
		}
		return s.store, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	builder, ok := s.builders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s: format %q: %w", domain.ErrLoad, path, ext, domain.ErrUnsupportedType)
	}

	source, err := builder(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrLoad, path, err)
	}
	return source, nil
}
