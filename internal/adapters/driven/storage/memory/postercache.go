package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// Ensure PosterCache implements the interface.
var _ driven.PosterCache = (*PosterCache)(nil)

// PosterCache is an in-memory implementation of driven.PosterCache.
// It lives for the duration of the process.
type PosterCache struct {
	mu      sync.RWMutex
	posters map[string]domain.PosterInfo
}

// NewPosterCache creates an empty poster cache.
func NewPosterCache() *PosterCache {
	return &PosterCache{
		posters: make(map[string]domain.PosterInfo),
	}
}

// GetPoster returns the cached links for title.
func (c *PosterCache) GetPoster(_ context.Context, title string) (*domain.PosterInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.posters[title]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &info, nil
}

// PutPoster stores links for title.
func (c *PosterCache) PutPoster(_ context.Context, title string, info domain.PosterInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posters[title] = info
	return nil
}

// Len returns the number of cached titles.
func (c *PosterCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.posters)
}
