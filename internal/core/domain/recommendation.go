package domain

// DefaultRecommendationCount is the number of neighbours returned per query.
const DefaultRecommendationCount = 5

// RankedTitle is a catalog entry prepared for display.
type RankedTitle struct {
	// Position is the catalog position of the entry.
	Position int `json:"position"`

	// Title is the title-cased display title.
	Title string `json:"title"`

	// Score is the cosine similarity to the selected movie.
	// It is zero for the selected movie itself.
	Score float64 `json:"score"`
}

// Recommendation is the result of resolving a query and ranking its neighbours.
type Recommendation struct {
	// Query is the raw user input.
	Query string `json:"query"`

	// Selected is the catalog entry the query resolved to.
	Selected RankedTitle `json:"selected"`

	// Recommendations are the most similar other entries,
	// ordered by descending score then ascending position.
	Recommendations []RankedTitle `json:"recommendations"`
}

// Titles returns the recommended display titles in rank order.
func (r *Recommendation) Titles() []string {
	titles := make([]string, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		titles[i] = rec.Title
	}
	return titles
}

// AllTitles returns the selected title followed by the recommendations.
// This is the set of titles the display layer looks posters up for.
func (r *Recommendation) AllTitles() []string {
	return append([]string{r.Selected.Title}, r.Titles()...)
}
