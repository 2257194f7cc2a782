package driven

import (
	"context"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// PosterLookup fetches poster and detail-page links for a movie title.
// This is an optional service - when nil, every title gets the placeholder.
type PosterLookup interface {
	// LookupPoster returns links for the title.
	// Returns domain.ErrNotFound if the service does not know the title,
	// or an error wrapping domain.ErrLookupFailed on transport failures.
	LookupPoster(ctx context.Context, title string) (*domain.PosterInfo, error)

	// Name identifies the provider in logs.
	Name() string
}

// PosterCache remembers successful poster lookups.
type PosterCache interface {
	// GetPoster returns the cached links for the title.
	// Returns domain.ErrNotFound on a cache miss.
	GetPoster(ctx context.Context, title string) (*domain.PosterInfo, error)

	// PutPoster stores links for the title, replacing any previous entry.
	PutPoster(ctx context.Context, title string, info domain.PosterInfo) error
}
