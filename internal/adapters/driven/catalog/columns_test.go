package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  Columns
	}{
		{"original dataset", []string{"movie_title", "comb"}, Columns{"movie_title", "comb"}},
		{"alternative names", []string{"id", "title", "combined_text"}, Columns{"title", "combined_text"}},
		{"preferred name wins", []string{"title", "movie_title", "comb"}, Columns{"movie_title", "comb"}},
		{"case and whitespace", []string{" Movie_Title ", "COMB"}, Columns{" Movie_Title ", "COMB"}},
		{"byte order mark", []string{"\ufeffmovie_title", "comb"}, Columns{"\ufeffmovie_title", "comb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColumns(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColumns_Missing(t *testing.T) {
	_, err := ResolveColumns([]string{"comb"})
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.Contains(t, err.Error(), "title")

	_, err = ResolveColumns([]string{"movie_title", "genres"})
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "combined text")
}

func TestIndex(t *testing.T) {
	names := []string{"a", "Title", "comb"}
	assert.Equal(t, 1, Index(names, "title"))
	assert.Equal(t, -1, Index(names, "missing"))
}
