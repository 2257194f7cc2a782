package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/logger"
	"github.com/custodia-labs/cinematch/internal/similarity"
)

// topTermsLogged is how many terms of the selected movie verbose logging shows.
const topTermsLogged = 5

// Ensure RecommendService implements the interface.
var _ driving.RecommendService = (*RecommendService)(nil)

// RecommendService resolves title queries and ranks their neighbours.
// It only reads its index, so one instance can serve concurrent queries.
type RecommendService struct {
	index    *similarity.Index
	resolver *Resolver
	count    int
}

// RecommendOption configures a RecommendService.
type RecommendOption func(*RecommendService)

// WithCount sets how many recommendations each query returns.
// Non-positive values are ignored.
func WithCount(k int) RecommendOption {
	return func(s *RecommendService) {
		if k > 0 {
			s.count = k
		}
	}
}

// NewRecommendService creates a recommend service over a built index.
func NewRecommendService(index *similarity.Index, opts ...RecommendOption) *RecommendService {
	s := &RecommendService{
		index:    index,
		resolver: NewResolver(index.Catalog),
		count:    domain.DefaultRecommendationCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveAndRank finds the movie matching query and its nearest neighbours.
func (s *RecommendService) ResolveAndRank(ctx context.Context, query string) (*domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Recommend")
	logger.Debug("query: %q", query)

	entry, err := s.resolver.Resolve(query)
	if err != nil {
		logger.Debug("resolve: %v", err)
		return nil, fmt.Errorf("recommend: %w", err)
	}
	logger.Debug("resolved to position %d (%q)", entry.Position, entry.Title)
	if logger.IsVerbose() {
		logger.Debug("top terms: %s", strings.Join(s.index.TopTerms(entry.Position, topTermsLogged), ", "))
	}

	neighbors := s.index.Neighbors(entry.Position, s.count)
	rec := &domain.Recommendation{
		Query: query,
		Selected: domain.RankedTitle{
			Position: entry.Position,
			Title:    domain.TitleCase(entry.Title),
		},
		Recommendations: make([]domain.RankedTitle, 0, len(neighbors)),
	}
	for _, n := range neighbors {
		e, _ := s.index.Catalog.Entry(n.Position)
		rec.Recommendations = append(rec.Recommendations, domain.RankedTitle{
			Position: n.Position,
			Title:    domain.TitleCase(e.Title),
			Score:    n.Score,
		})
		logger.Debug("  #%d %q score=%.4f", n.Position, e.Title, n.Score)
	}

	return rec, nil
}

// Stats summarises the indexed catalog.
func (s *RecommendService) Stats() domain.CatalogStats {
	return s.index.Stats()
}
