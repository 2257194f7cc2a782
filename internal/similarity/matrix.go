package similarity

// Matrix is a dense, symmetric n×n table of cosine similarities.
type Matrix struct {
	n      int
	values []float64
}

// NewMatrix computes the pairwise cosine similarity of vectors. Only the
// upper triangle is computed; the lower triangle mirrors it. Zero vectors
// score 0 against everything, including themselves.
func NewMatrix(vectors []Vector) *Matrix {
	n := len(vectors)
	m := &Matrix{n: n, values: make([]float64, n*n)}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		m.values[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			s := Dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
			if s > 1 {
				s = 1
			}
			m.values[i*n+j] = s
			m.values[j*n+i] = s
		}
	}
	return m
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns the similarity between positions i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.values[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.n)
	copy(out, m.values[i*m.n:(i+1)*m.n])
	return out
}
