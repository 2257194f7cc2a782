package driving

import (
	"context"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// RecommendService answers title queries against an indexed catalog.
type RecommendService interface {
	// ResolveAndRank finds the first title containing query
	// (case-insensitive) and returns its nearest neighbours.
	// Returns domain.ErrEmptyQuery for a blank query and domain.ErrNotFound
	// when no title matches.
	ResolveAndRank(ctx context.Context, query string) (*domain.Recommendation, error)

	// Stats summarises the indexed catalog.
	Stats() domain.CatalogStats
}

// PosterService decorates titles with poster and detail-page links.
type PosterService interface {
	// Posters returns one poster per title, in input order.
	// It never fails: lookup errors yield the placeholder image.
	Posters(ctx context.Context, titles []string) []domain.Poster
}
