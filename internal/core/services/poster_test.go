package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// mockPosterLookup returns canned results per title.
type mockPosterLookup struct {
	mu      sync.Mutex
	results map[string]*domain.PosterInfo
	errs    map[string]error
	calls   atomic.Int32
	seen    []string
}

func (m *mockPosterLookup) LookupPoster(_ context.Context, title string) (*domain.PosterInfo, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.seen = append(m.seen, title)
	m.mu.Unlock()

	if err, ok := m.errs[title]; ok {
		return nil, err
	}
	if info, ok := m.results[title]; ok {
		return info, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPosterLookup) Name() string {
	return "mock"
}

// failingCache fails every read and write.
type failingCache struct{}

func (failingCache) GetPoster(context.Context, string) (*domain.PosterInfo, error) {
	return nil, errors.New("disk error")
}

func (failingCache) PutPoster(context.Context, string, domain.PosterInfo) error {
	return errors.New("disk error")
}

func TestPosterService_NoLookup(t *testing.T) {
	service := NewPosterService(nil)

	posters := service.Posters(context.Background(), []string{"Heat", "Ronin"})

	require.Len(t, posters, 2)
	for i, title := range []string{"Heat", "Ronin"} {
		assert.Equal(t, title, posters[i].Title)
		assert.Equal(t, domain.DefaultPlaceholderURL, posters[i].PosterURL)
		assert.True(t, posters[i].Placeholder)
		assert.False(t, posters[i].HasDetail())
	}
}

func TestPosterService_MixedResults(t *testing.T) {
	lookup := &mockPosterLookup{
		results: map[string]*domain.PosterInfo{
			"Heat":  {PosterURL: "https://img/heat.jpg", DetailURL: "https://www.imdb.com/title/tt0113277/"},
			"Ronin": {DetailURL: "https://www.imdb.com/title/tt0122690/"},
		},
		errs: map[string]error{
			"Ali": domain.ErrLookupFailed,
		},
	}
	service := NewPosterService(lookup, WithPlaceholder("https://example.com/none.png"))

	posters := service.Posters(context.Background(), []string{"Heat", "Ronin", "Ali", "Thief"})

	require.Len(t, posters, 4)

	assert.Equal(t, domain.Poster{
		Title:     "Heat",
		PosterURL: "https://img/heat.jpg",
		DetailURL: "https://www.imdb.com/title/tt0113277/",
	}, posters[0])

	// A known title without a cover is shown like a failed lookup.
	for _, p := range posters[1:] {
		assert.True(t, p.Placeholder)
		assert.Equal(t, "https://example.com/none.png", p.PosterURL)
		assert.Empty(t, p.DetailURL)
	}
}

func TestPosterService_PreservesOrder(t *testing.T) {
	titles := []string{"a1", "b2", "c3", "d4", "e5", "f6"}
	results := make(map[string]*domain.PosterInfo)
	for _, title := range titles {
		results[title] = &domain.PosterInfo{PosterURL: "https://img/" + title}
	}
	service := NewPosterService(&mockPosterLookup{results: results}, WithConcurrency(2))

	posters := service.Posters(context.Background(), titles)

	for i, title := range titles {
		assert.Equal(t, title, posters[i].Title)
		assert.Equal(t, "https://img/"+title, posters[i].PosterURL)
	}
}

func TestPosterService_Cache(t *testing.T) {
	lookup := &mockPosterLookup{
		results: map[string]*domain.PosterInfo{
			"Heat": {PosterURL: "https://img/heat.jpg"},
		},
	}
	cache := memory.NewPosterCache()
	service := NewPosterService(lookup, WithPosterCache(cache))

	first := service.Posters(context.Background(), []string{"Heat", "Ali"})
	second := service.Posters(context.Background(), []string{"Heat", "Ali"})

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len(), "failed lookups are not cached")
	assert.Equal(t, int32(3), lookup.calls.Load(), "Heat is served from cache the second time")
}

func TestPosterService_CacheFailureFallsThrough(t *testing.T) {
	lookup := &mockPosterLookup{
		results: map[string]*domain.PosterInfo{
			"Heat": {PosterURL: "https://img/heat.jpg"},
		},
	}
	service := NewPosterService(lookup, WithPosterCache(failingCache{}))

	posters := service.Posters(context.Background(), []string{"Heat"})

	assert.Equal(t, "https://img/heat.jpg", posters[0].PosterURL)
	assert.False(t, posters[0].Placeholder)
}

func TestPosterService_Empty(t *testing.T) {
	service := NewPosterService(&mockPosterLookup{})

	assert.Empty(t, service.Posters(context.Background(), nil))
}
