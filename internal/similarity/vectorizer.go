package similarity

import (
	"math"
	"sort"
)

// Vocabulary maps terms to vector dimensions. Dimensions follow the lexical
// order of the terms. A Vocabulary is frozen once fitted.
type Vocabulary struct {
	terms []string
	dims  map[string]int
	idf   []float64
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Dimension returns the dimension assigned to term.
func (v *Vocabulary) Dimension(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	d, ok := v.dims[term]
	return d, ok
}

// Term returns the term at dimension d.
func (v *Vocabulary) Term(d int) string {
	return v.terms[d]
}

// IDF returns the inverse document frequency weight of dimension d.
func (v *Vocabulary) IDF(d int) float64 {
	return v.idf[d]
}

// Terms returns a copy of the terms in dimension order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Vector is a sparse TF-IDF vector. Indices are ascending dimensions and
// Weights holds the matching non-negative weights.
type Vector struct {
	Indices []int
	Weights []float64
}

// IsZero reports whether the vector has no non-zero weight.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the Euclidean magnitude of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v.Weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Weights[i] * b.Weights[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Vectorizer turns document texts into L2-normalised TF-IDF vectors.
type Vectorizer struct {
	stopWords map[string]struct{}
}

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithStopWords replaces the stop-word list.
func WithStopWords(words []string) Option {
	return func(v *Vectorizer) {
		v.stopWords = stopWordSet(words)
	}
}

// WithoutStopWords keeps every token.
func WithoutStopWords() Option {
	return func(v *Vectorizer) {
		v.stopWords = map[string]struct{}{}
	}
}

// NewVectorizer creates a Vectorizer using the English stop-word list unless
// overridden by opts.
func NewVectorizer(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		stopWords: stopWordSet(EnglishStopWords()),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fit builds the vocabulary from texts and returns one vector per text, in
// input order.
func (z *Vectorizer) Fit(texts []string) (*Vocabulary, []Vector) {
	counts := make([]map[string]int, len(texts))
	docFreq := make(map[string]int)

	for i, text := range texts {
		tf := make(map[string]int)
		for _, tok := range Tokenize(text) {
			if _, stop := z.stopWords[tok]; stop {
				continue
			}
			tf[tok]++
		}
		for term := range tf {
			docFreq[term]++
		}
		counts[i] = tf
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		terms: terms,
		dims:  make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(texts))
	for d, term := range terms {
		vocab.dims[term] = d
		vocab.idf[d] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([]Vector, len(texts))
	for i, tf := range counts {
		vectors[i] = vocab.weigh(tf)
	}
	return vocab, vectors
}

func (v *Vocabulary) weigh(tf map[string]int) Vector {
	if len(tf) == 0 {
		return Vector{}
	}

	vec := Vector{
		Indices: make([]int, 0, len(tf)),
		Weights: make([]float64, 0, len(tf)),
	}
	for term := range tf {
		vec.Indices = append(vec.Indices, v.dims[term])
	}
	sort.Ints(vec.Indices)

	var sum float64
	for _, d := range vec.Indices {
		w := float64(tf[v.terms[d]]) * v.idf[d]
		vec.Weights = append(vec.Weights, w)
		sum += w * w
	}
	norm := math.Sqrt(sum)
	for k := range vec.Weights {
		vec.Weights[k] /= norm
	}
	return vec
}
