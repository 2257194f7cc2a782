package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendation_Titles(t *testing.T) {
	r := &Recommendation{
		Selected: RankedTitle{Position: 0, Title: "Toy Story"},
		Recommendations: []RankedTitle{
			{Position: 2, Title: "Bug'S Life", Score: 0.4},
			{Position: 1, Title: "Cars", Score: 0.1},
		},
	}

	assert.Equal(t, []string{"Bug'S Life", "Cars"}, r.Titles())
	assert.Equal(t, []string{"Toy Story", "Bug'S Life", "Cars"}, r.AllTitles())
}

func TestRecommendation_TitlesEmpty(t *testing.T) {
	r := &Recommendation{Selected: RankedTitle{Title: "Solo"}}

	assert.Empty(t, r.Titles())
	assert.Equal(t, []string{"Solo"}, r.AllTitles())
}

func TestPoster_HasDetail(t *testing.T) {
	assert.True(t, Poster{DetailURL: "https://www.imdb.com/title/tt0114709/"}.HasDetail())
	assert.False(t, Poster{PosterURL: DefaultPlaceholderURL, Placeholder: true}.HasDetail())
}
