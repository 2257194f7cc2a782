package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

func TestPosterCache(t *testing.T) {
	ctx := context.Background()
	cache := NewPosterCache()

	_, err := cache.GetPoster(ctx, "Heat")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	info := domain.PosterInfo{PosterURL: "https://img/heat.jpg", DetailURL: "https://www.imdb.com/title/tt0113277/"}
	require.NoError(t, cache.PutPoster(ctx, "Heat", info))

	got, err := cache.GetPoster(ctx, "Heat")
	require.NoError(t, err)
	assert.Equal(t, info, *got)
	assert.Equal(t, 1, cache.Len())
}

func TestCatalogStore(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore()

	catalog, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())

	_, err = store.LastImport(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	run := domain.CatalogImport{ID: "run-1", Source: "movies.csv", Rows: 2, ImportedAt: time.Now()}
	src := domain.NewCatalog([]string{"heat", "ronin"}, []string{"crime", ""})
	require.NoError(t, store.ReplaceCatalog(ctx, run, src))

	catalog, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Entries, catalog.Entries)

	last, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", last.ID)

	// Callers cannot mutate the stored catalog.
	catalog.Entries[0].Title = "changed"
	again, _ := store.Load(ctx)
	assert.Equal(t, "heat", again.Entries[0].Title)
}
