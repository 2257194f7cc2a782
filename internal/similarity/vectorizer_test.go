package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_Fit_Vocabulary(t *testing.T) {
	vocab, vectors := NewVectorizer().Fit([]string{
		"the toy and the animation",
		"zebra animation",
	})

	require.Len(t, vectors, 2)
	assert.Equal(t, []string{"animation", "toy", "zebra"}, vocab.Terms())

	d, ok := vocab.Dimension("toy")
	assert.True(t, ok)
	assert.Equal(t, 1, d)

	_, ok = vocab.Dimension("the")
	assert.False(t, ok, "stop words are excluded")
}

func TestVectorizer_Fit_Weights(t *testing.T) {
	vocab, vectors := NewVectorizer().Fit([]string{
		"animation toy",
		"animation",
	})

	// animation appears in both documents, toy in one.
	animation, _ := vocab.Dimension("animation")
	toy, _ := vocab.Dimension("toy")
	assert.InDelta(t, 1.0, vocab.IDF(animation), 1e-9)
	assert.InDelta(t, math.Log(3.0/2.0)+1, vocab.IDF(toy), 1e-9)

	for _, v := range vectors {
		assert.InDelta(t, 1.0, v.Norm(), 1e-9)
		for _, w := range v.Weights {
			assert.GreaterOrEqual(t, w, 0.0)
		}
	}

	assert.Equal(t, []int{animation}, vectors[1].Indices)
	assert.InDelta(t, 1.0, vectors[1].Weights[0], 1e-9)
}

func TestVectorizer_Fit_TermFrequency(t *testing.T) {
	_, vectors := NewVectorizer().Fit([]string{"war war peace", "war peace"})

	// Raw counts: "war" outweighs "peace" in the first document only.
	assert.Greater(t, vectors[0].Weights[1], vectors[0].Weights[0])
	assert.InDelta(t, vectors[1].Weights[0], vectors[1].Weights[1], 1e-12)
}

func TestVectorizer_Fit_EmptyText(t *testing.T) {
	_, vectors := NewVectorizer().Fit([]string{"", "the and of", "drama"})

	assert.True(t, vectors[0].IsZero())
	assert.True(t, vectors[1].IsZero(), "only stop words")
	assert.False(t, vectors[2].IsZero())
	assert.Zero(t, vectors[0].Norm())
}

func TestVectorizer_Options(t *testing.T) {
	vocab, _ := NewVectorizer(WithoutStopWords()).Fit([]string{"the drama"})
	assert.Equal(t, []string{"drama", "the"}, vocab.Terms())

	vocab, _ = NewVectorizer(WithStopWords([]string{"DRAMA"})).Fit([]string{"the drama"})
	assert.Equal(t, []string{"the"}, vocab.Terms())
}

func TestDot(t *testing.T) {
	a := Vector{Indices: []int{0, 2, 5}, Weights: []float64{1, 2, 3}}
	b := Vector{Indices: []int{2, 3, 5}, Weights: []float64{4, 1, 1}}

	assert.InDelta(t, 11.0, Dot(a, b), 1e-12)
	assert.InDelta(t, 11.0, Dot(b, a), 1e-12)
	assert.Zero(t, Dot(a, Vector{}))
}
