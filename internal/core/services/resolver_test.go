package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

func TestResolver_Resolve(t *testing.T) {
	catalog := domain.NewCatalog(
		[]string{"toy story", "toy story 2", "the toxic avenger", "cars"},
		nil,
	)
	r := NewResolver(catalog)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"lowercase", "toy", 0},
		{"uppercase", "TOY", 0},
		{"mixed case", "Toy Story 2", 1},
		{"first match wins", "to", 0},
		{"substring inside word", "oxi", 2},
		{"leading space is significant", " story", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := r.Resolve(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Position)
		})
	}
}

func TestResolver_NotFound(t *testing.T) {
	r := NewResolver(domain.NewCatalog([]string{"toy story", "cars"}, nil))

	_, err := r.Resolve("zzzznotamovie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, errors.Is(err, domain.ErrEmptyQuery))

	_, err = r.Resolve("cars ")
	assert.ErrorIs(t, err, domain.ErrNotFound, "trailing space is not trimmed")
}

func TestResolver_EmptyQuery(t *testing.T) {
	r := NewResolver(domain.NewCatalog([]string{"toy story"}, nil))

	for _, q := range []string{"", " ", "\t\n"} {
		_, err := r.Resolve(q)
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestResolver_EmptyCatalog(t *testing.T) {
	_, err := NewResolver(&domain.Catalog{}).Resolve("toy")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
