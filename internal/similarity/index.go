package similarity

import (
	"sort"
	"time"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/logger"
)

// Index bundles a catalog with its vector space and similarity matrix.
// It is immutable after Build returns.
type Index struct {
	Catalog    *domain.Catalog
	Vocabulary *Vocabulary
	Vectors    []Vector
	Matrix     *Matrix
}

// Build vectorises the catalog descriptors and computes the similarity
// matrix.
func Build(catalog *domain.Catalog, opts ...Option) *Index {
	if catalog == nil {
		catalog = &domain.Catalog{}
	}

	logger.Section("Building Index")
	start := time.Now()

	vocab, vectors := NewVectorizer(opts...).Fit(catalog.Texts())
	logger.Debug("vocabulary: %d terms over %d entries (%s)", vocab.Len(), catalog.Len(), time.Since(start))

	matrixStart := time.Now()
	matrix := NewMatrix(vectors)
	logger.Debug("similarity matrix: %dx%d (%s)", matrix.Len(), matrix.Len(), time.Since(matrixStart))

	return &Index{
		Catalog:    catalog,
		Vocabulary: vocab,
		Vectors:    vectors,
		Matrix:     matrix,
	}
}

// Len returns the number of catalog entries.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return x.Catalog.Len()
}

// Neighbors returns the k nearest entries to position p.
func (x *Index) Neighbors(p, k int) []Neighbor {
	return x.Matrix.TopK(p, k)
}

// TopTerms returns up to n terms of entry p with the highest weights.
// Ties are broken by term order.
func (x *Index) TopTerms(p, n int) []string {
	if x == nil || p < 0 || p >= len(x.Vectors) || n <= 0 {
		return nil
	}
	v := x.Vectors[p]
	order := make([]int, len(v.Indices))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return v.Weights[order[a]] > v.Weights[order[b]]
	})
	if len(order) > n {
		order = order[:n]
	}
	terms := make([]string, len(order))
	for i, k := range order {
		terms[i] = x.Vocabulary.Term(v.Indices[k])
	}
	return terms
}

// Stats summarises the indexed catalog.
func (x *Index) Stats() domain.CatalogStats {
	if x == nil {
		return domain.CatalogStats{}
	}
	return statsOf(x.Len(), x.Vocabulary, x.Vectors)
}

// Describe summarises a catalog from its vector space alone, without
// computing the similarity matrix.
func Describe(catalog *domain.Catalog, opts ...Option) domain.CatalogStats {
	if catalog == nil {
		return domain.CatalogStats{}
	}
	vocab, vectors := NewVectorizer(opts...).Fit(catalog.Texts())
	return statsOf(catalog.Len(), vocab, vectors)
}

func statsOf(entries int, vocab *Vocabulary, vectors []Vector) domain.CatalogStats {
	stats := domain.CatalogStats{
		Entries:        entries,
		VocabularySize: vocab.Len(),
	}
	for _, v := range vectors {
		if v.IsZero() {
			stats.EmptyDescriptors++
		}
	}
	return stats
}
