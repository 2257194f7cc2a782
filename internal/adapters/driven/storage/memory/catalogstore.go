package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
type CatalogStore struct {
	mu      sync.RWMutex
	entries []domain.CatalogEntry
	imports []domain.CatalogImport
}

// NewCatalogStore creates an empty catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Load returns a copy of the stored catalog.
func (s *CatalogStore) Load(_ context.Context) (*domain.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.CatalogEntry, len(s.entries))
	copy(entries, s.entries)
	return &domain.Catalog{Entries: entries}, nil
}

// ReplaceCatalog swaps the stored catalog and records the run.
func (s *CatalogStore) ReplaceCatalog(_ context.Context, run domain.CatalogImport, catalog *domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]domain.CatalogEntry, catalog.Len())
	for i := range s.entries {
		e := catalog.Entries[i]
		e.Position = i
		s.entries[i] = e
	}
	s.imports = append(s.imports, run)
	return nil
}

// LastImport returns the most recent run.
func (s *CatalogStore) LastImport(_ context.Context) (*domain.CatalogImport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.imports) == 0 {
		return nil, domain.ErrNotFound
	}
	run := s.imports[len(s.imports)-1]
	return &run, nil
}
