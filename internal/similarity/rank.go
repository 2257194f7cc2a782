package similarity

import "sort"

// Neighbor is a catalog position and its similarity to the query position.
type Neighbor struct {
	Position int
	Score    float64
}

// TopK returns up to k positions most similar to p, excluding p itself.
// Ties are broken by ascending position. An out-of-range p or a
// non-positive k yields nil.
func (m *Matrix) TopK(p, k int) []Neighbor {
	if p < 0 || p >= m.Len() || k <= 0 {
		return nil
	}

	candidates := make([]Neighbor, 0, m.n-1)
	for j := 0; j < m.n; j++ {
		if j == p {
			continue
		}
		candidates = append(candidates, Neighbor{Position: j, Score: m.At(p, j)})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Position < candidates[b].Position
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	return candidates[:k]
}
