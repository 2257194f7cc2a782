package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/logger"
)

// Ensure PosterService implements the interface.
var _ driving.PosterService = (*PosterService)(nil)

// DefaultPosterConcurrency is the number of lookups run at once.
const DefaultPosterConcurrency = 4

// PosterService looks up posters and substitutes the placeholder on failure.
type PosterService struct {
	lookup      driven.PosterLookup // nil = placeholders only
	cache       driven.PosterCache  // nil = no caching
	placeholder string
	concurrency int
}

// PosterOption configures a PosterService.
type PosterOption func(*PosterService)

// WithPosterCache enables caching of successful lookups.
func WithPosterCache(cache driven.PosterCache) PosterOption {
	return func(s *PosterService) {
		s.cache = cache
	}
}

// WithPlaceholder sets the fallback image URL.
func WithPlaceholder(url string) PosterOption {
	return func(s *PosterService) {
		if url != "" {
			s.placeholder = url
		}
	}
}

// WithConcurrency sets how many lookups may run at once.
func WithConcurrency(n int) PosterOption {
	return func(s *PosterService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewPosterService creates a poster service. lookup may be nil.
func NewPosterService(lookup driven.PosterLookup, opts ...PosterOption) *PosterService {
	s := &PosterService{
		lookup:      lookup,
		placeholder: domain.DefaultPlaceholderURL,
		concurrency: DefaultPosterConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Posters returns one poster per title, in input order.
func (s *PosterService) Posters(ctx context.Context, titles []string) []domain.Poster {
	posters := make([]domain.Poster, len(titles))
	if len(titles) == 0 {
		return posters
	}

	logger.Section("Posters")

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for i, title := range titles {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			posters[i] = s.poster(ctx, title)
		}(i, title)
	}
	wg.Wait()

	return posters
}

func (s *PosterService) poster(ctx context.Context, title string) domain.Poster {
	if s.lookup == nil {
		return s.placeholderFor(title)
	}

	if s.cache != nil {
		info, err := s.cache.GetPoster(ctx, title)
		switch {
		case err == nil:
			logger.Debug("poster cache hit: %q", title)
			return s.fromInfo(title, info)
		case !errors.Is(err, domain.ErrNotFound):
			logger.Error(err, "poster cache read for %q", title)
		}
	}

	info, err := s.lookup.LookupPoster(ctx, title)
	if err != nil {
		logger.Error(err, "%s lookup for %q", s.lookup.Name(), title)
		return s.placeholderFor(title)
	}

	if s.cache != nil {
		if err := s.cache.PutPoster(ctx, title, *info); err != nil {
			logger.Error(err, "poster cache write for %q", title)
		}
	}
	return s.fromInfo(title, info)
}

func (s *PosterService) fromInfo(title string, info *domain.PosterInfo) domain.Poster {
	// A title without a cover shows only the placeholder, like a failed lookup.
	if info.PosterURL == "" {
		return s.placeholderFor(title)
	}
	return domain.Poster{
		Title:     title,
		PosterURL: info.PosterURL,
		DetailURL: info.DetailURL,
	}
}

func (s *PosterService) placeholderFor(title string) domain.Poster {
	return domain.Poster{
		Title:       title,
		PosterURL:   s.placeholder,
		Placeholder: true,
	}
}
