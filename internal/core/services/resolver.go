package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// Resolver maps free-text queries to catalog positions.
// A query matches the first title, in position order, that contains it as a
// case-insensitive substring.
type Resolver struct {
	catalog *domain.Catalog
	lowered []string
}

// NewResolver prepares lowercased titles for matching.
func NewResolver(catalog *domain.Catalog) *Resolver {
	lowered := make([]string, catalog.Len())
	for i := range lowered {
		lowered[i] = strings.ToLower(catalog.Entries[i].Title)
	}
	return &Resolver{catalog: catalog, lowered: lowered}
}

// Resolve returns the first matching entry.
// The query is matched as typed; surrounding whitespace is significant.
// Returns domain.ErrEmptyQuery for blank input and domain.ErrNotFound when
// nothing matches.
func (r *Resolver) Resolve(query string) (domain.CatalogEntry, error) {
	if strings.TrimSpace(query) == "" {
		return domain.CatalogEntry{}, domain.ErrEmptyQuery
	}

	needle := strings.ToLower(query)
	for i, title := range r.lowered {
		if strings.Contains(title, needle) {
			return r.catalog.Entries[i], nil
		}
	}
	return domain.CatalogEntry{}, fmt.Errorf("title %q: %w", query, domain.ErrNotFound)
}
