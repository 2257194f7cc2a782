package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

func TestRead(t *testing.T) {
	input := "movie_title,comb\n" +
		"avatar,action adventure fantasy sam worthington\n" +
		"\"pirates of the caribbean: at world's end\",\"action, adventure\"\n" +
		"spectre,\n"

	catalog, err := Read(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())
	assert.Equal(t, domain.CatalogEntry{Position: 0, Title: "avatar", CombinedText: "action adventure fantasy sam worthington"}, catalog.Entries[0])
	assert.Equal(t, "pirates of the caribbean: at world's end", catalog.Entries[1].Title)
	assert.Equal(t, "action, adventure", catalog.Entries[1].CombinedText)
	assert.Equal(t, "", catalog.Entries[2].CombinedText)
	assert.Equal(t, 2, catalog.Entries[2].Position)
}

func TestRead_AlternativeColumns(t *testing.T) {
	input := "id,combined_text,title,year\n1,space opera,star wars,1977\n2,,alien\n"

	catalog, err := Read(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())
	assert.Equal(t, "star wars", catalog.Entries[0].Title)
	assert.Equal(t, "space opera", catalog.Entries[0].CombinedText)
	assert.Equal(t, "alien", catalog.Entries[1].Title)
	assert.Equal(t, "", catalog.Entries[1].CombinedText)
}

func TestRead_ShortRowMissingDescriptor(t *testing.T) {
	catalog, err := Read(context.Background(), strings.NewReader("movie_title,comb\nheat\n"))

	require.NoError(t, err)
	assert.Equal(t, "", catalog.Entries[0].CombinedText)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty file", "", domain.ErrMissingColumn},
		{"missing title column", "name,comb\nheat,crime\n", domain.ErrMissingColumn},
		{"missing descriptor column", "movie_title,genres\nheat,crime\n", domain.ErrMissingColumn},
		{"missing title cell", "movie_title,comb\n,crime\n", domain.ErrMissingTitle},
		{"short row without title", "comb,movie_title\ncrime\n", domain.ErrMissingTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(context.Background(), strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrLoad)
		})
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	catalog, err := Read(context.Background(), strings.NewReader("movie_title,comb\n"))

	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte("movie_title,comb\nheat,crime heist\n"), 0o600))

	source, err := Builder(path)
	require.NoError(t, err)

	catalog, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}

func TestSource_Load_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
