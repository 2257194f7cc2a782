package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

func sampleRecommendation() *domain.Recommendation {
	return &domain.Recommendation{
		Query:    "toy",
		Selected: domain.RankedTitle{Position: 0, Title: "Toy Story", Score: 1},
		Recommendations: []domain.RankedTitle{
			{Position: 1, Title: "A Bug'S Life", Score: 0.3135},
			{Position: 2, Title: "Cars", Score: 0.2453},
		},
	}
}

func TestNewRecommendationList(t *testing.T) {
	l := NewRecommendationList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())
	assert.True(t, l.ShowPosters())
	assert.Nil(t, l.SelectedTitle())
}

func TestRecommendationList_ViewEmpty(t *testing.T) {
	l := NewRecommendationList(nil)

	assert.Contains(t, l.View(), "No recommendations yet")
}

func TestRecommendationList_View(t *testing.T) {
	l := NewRecommendationList(nil)
	l.SetDimensions(100, 30)
	l.SetRecommendation(sampleRecommendation())

	view := l.View()

	assert.Contains(t, view, "Selected Movie: Toy Story")
	assert.Contains(t, view, "Top 2 Recommendations for Toy Story")
	assert.Contains(t, view, "A Bug'S Life")
	assert.Contains(t, view, "Cars")
	assert.Contains(t, view, "0.245")
}

func TestRecommendationList_ViewNoNeighbours(t *testing.T) {
	l := NewRecommendationList(nil)
	l.SetRecommendation(&domain.Recommendation{Selected: domain.RankedTitle{Title: "Solo"}})

	view := l.View()

	assert.Contains(t, view, "Selected Movie: Solo")
	assert.Contains(t, view, "No other movies")
}

func TestRecommendationList_Posters(t *testing.T) {
	l := NewRecommendationList(nil)
	l.SetDimensions(100, 30)
	l.SetRecommendation(sampleRecommendation())

	l.SetPosters([]domain.Poster{
		{Title: "Toy Story", PosterURL: "https://img/toy.jpg", DetailURL: "https://www.imdb.com/title/tt0114709/"},
		{Title: "Cars", PosterURL: domain.DefaultPlaceholderURL, Placeholder: true},
	})

	view := l.View()
	assert.Contains(t, view, "https://img/toy.jpg")
	assert.Contains(t, view, "tt0114709")
	assert.Contains(t, view, domain.DefaultPlaceholderURL)

	p, ok := l.Poster("Cars")
	require.True(t, ok)
	assert.False(t, p.HasDetail())

	l.TogglePosters()
	assert.False(t, l.ShowPosters())
	assert.NotContains(t, l.View(), "https://img/toy.jpg")
}

func TestRecommendationList_SetRecommendationClearsPosters(t *testing.T) {
	l := NewRecommendationList(nil)
	l.SetRecommendation(sampleRecommendation())
	l.SetPosters([]domain.Poster{{Title: "Cars"}})
	l.MoveDown()

	l.SetRecommendation(sampleRecommendation())

	_, ok := l.Poster("Cars")
	assert.False(t, ok)
	assert.Equal(t, 0, l.Selected())
}

func TestRecommendationList_Navigation(t *testing.T) {
	l := NewRecommendationList(nil)
	l.SetRecommendation(sampleRecommendation())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, "Cars", l.SelectedTitle().Title)

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, l.Selected(), "stops at last item")

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Selected(), "stops at first item")
}

func TestRecommendationList_TruncatesLongTitles(t *testing.T) {
	l := NewRecommendationList(nil)
	l.SetDimensions(30, 30)
	l.SetRecommendation(&domain.Recommendation{
		Selected: domain.RankedTitle{Title: "Short"},
		Recommendations: []domain.RankedTitle{
			{Position: 1, Title: "An Extremely Long Movie Title That Keeps Going"},
		},
	})

	assert.Contains(t, l.View(), "...")
}
