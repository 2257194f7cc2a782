package domain

// DefaultPlaceholderURL is shown when no poster can be found.
const DefaultPlaceholderURL = "https://via.placeholder.com/200x300?text=No+Image"

// PosterInfo is what a metadata provider returns for a title.
type PosterInfo struct {
	// PosterURL is the full-size cover image.
	PosterURL string

	// DetailURL is the provider's detail page for the title.
	DetailURL string
}

// Poster is the display-ready image for a title.
// When the lookup failed, PosterURL is the placeholder and DetailURL is empty.
// A title the provider knows but has no cover for keeps its DetailURL.
type Poster struct {
	// Title is the display title the poster was looked up for.
	Title string `json:"title"`

	// PosterURL is the image to show.
	PosterURL string `json:"poster_url"`

	// DetailURL links to the title's detail page, if known.
	DetailURL string `json:"detail_url,omitempty"`

	// Placeholder is true when PosterURL is the fallback image.
	Placeholder bool `json:"placeholder"`
}

// HasDetail returns true if the poster links to a detail page.
func (p Poster) HasDetail() bool {
	return p.DetailURL != ""
}
