package mcp

import (
	"context"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// mockRecommendService is a mock implementation of driving.RecommendService.
type mockRecommendService struct {
	rec   *domain.Recommendation
	err   error
	stats domain.CatalogStats
	query string
}

func (m *mockRecommendService) ResolveAndRank(_ context.Context, query string) (*domain.Recommendation, error) {
	m.query = query
	return m.rec, m.err
}

func (m *mockRecommendService) Stats() domain.CatalogStats {
	return m.stats
}

// mockPosterService is a mock implementation of driving.PosterService.
type mockPosterService struct {
	titles []string
}

func (m *mockPosterService) Posters(_ context.Context, titles []string) []domain.Poster {
	m.titles = titles
	posters := make([]domain.Poster, len(titles))
	for i, title := range titles {
		posters[i] = domain.Poster{
			Title:       title,
			PosterURL:   domain.DefaultPlaceholderURL,
			Placeholder: true,
		}
	}
	posters[0].PosterURL = "https://img.example/toy.jpg"
	posters[0].DetailURL = "https://www.imdb.com/title/tt0114709/"
	posters[0].Placeholder = false
	return posters
}

func toyStory() *domain.Recommendation {
	return &domain.Recommendation{
		Query:    "toy",
		Selected: domain.RankedTitle{Position: 0, Title: "Toy Story"},
		Recommendations: []domain.RankedTitle{
			{Position: 2, Title: "Bug'S Life", Score: 0.31348342733583406},
			{Position: 1, Title: "Cars", Score: 0.24527198569314443},
		},
	}
}
