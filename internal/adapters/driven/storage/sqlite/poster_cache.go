package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// posterCache implements driven.PosterCache.
type posterCache struct {
	store *Store
}

var _ driven.PosterCache = (*posterCache)(nil)

// GetPoster returns the cached links for title.
func (p *posterCache) GetPoster(ctx context.Context, title string) (*domain.PosterInfo, error) {
	var info domain.PosterInfo
	err := p.store.db.QueryRowContext(ctx,
		"SELECT poster_url, detail_url FROM poster_cache WHERE title = ?", title,
	).Scan(&info.PosterURL, &info.DetailURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying poster cache: %w", err)
	}
	return &info, nil
}

// PutPoster stores links for title.
func (p *posterCache) PutPoster(ctx context.Context, title string, info domain.PosterInfo) error {
	_, err := p.store.db.ExecContext(ctx, `
		INSERT INTO poster_cache (title, poster_url, detail_url, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			poster_url = excluded.poster_url,
			detail_url = excluded.detail_url,
			fetched_at = excluded.fetched_at
	`, title, info.PosterURL, info.DetailURL, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing poster cache: %w", err)
	}
	return nil
}
