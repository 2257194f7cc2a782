// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// RecommendationList displays the selected movie and its ranked neighbours.
type RecommendationList struct {
	rec         *domain.Recommendation
	posters     map[string]domain.Poster
	showPosters bool
	selected    int
	styles      *styles.Styles
	width       int
	height      int
}

// NewRecommendationList creates an empty list.
func NewRecommendationList(s *styles.Styles) *RecommendationList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecommendationList{
		posters:     make(map[string]domain.Poster),
		showPosters: true,
		styles:      s,
		width:       80,
		height:      10,
	}
}

// Init initialises the list.
func (r *RecommendationList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecommendationList) Update(msg tea.Msg) (*RecommendationList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the selected movie header and the ranked titles.
func (r *RecommendationList) View() string {
	if r.rec == nil {
		return r.styles.Muted.Render("No recommendations yet")
	}

	lines := make([]string, 0, len(r.rec.Recommendations)*3+4)
	lines = append(lines, r.styles.Subtitle.Render("Selected Movie: "+r.rec.Selected.Title))
	lines = append(lines, r.posterLines(r.rec.Selected.Title, "  ")...)
	lines = append(lines, "")

	if len(r.rec.Recommendations) == 0 {
		lines = append(lines, r.styles.Muted.Render("No other movies in the catalog"))
		return strings.Join(lines, "\n")
	}

	header := fmt.Sprintf("Top %d Recommendations for %s", len(r.rec.Recommendations), r.rec.Selected.Title)
	lines = append(lines, r.styles.Title.Render(header), "")

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderTitle(i))
		lines = append(lines, r.posterLines(r.rec.Recommendations[i].Title, "     ")...)
	}

	return strings.Join(lines, "\n")
}

// visibleRange keeps the selection on screen. Each entry takes up to
// three lines with posters shown.
func (r *RecommendationList) visibleRange() (int, int) {
	perEntry := 1
	if r.showPosters && len(r.posters) > 0 {
		perEntry = 3
	}
	visible := (r.height - 6) / perEntry
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.rec.Recommendations) {
		end = len(r.rec.Recommendations)
	}
	return start, end
}

func (r *RecommendationList) renderTitle(index int) string {
	item := r.rec.Recommendations[index]

	title := item.Title
	maxTitleLen := r.width - 16
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	label := fmt.Sprintf("%2d. %-*s", index+1, maxTitleLen, title)
	score := fmt.Sprintf("%.3f", item.Score)

	if index == r.selected {
		return r.styles.Selected.Render("> " + label + "  " + score)
	}
	return r.styles.Normal.Render("  "+label+"  ") + r.styles.Score.Render(score)
}

func (r *RecommendationList) posterLines(title, indent string) []string {
	if !r.showPosters {
		return nil
	}
	p, ok := r.posters[title]
	if !ok {
		return nil
	}
	lines := []string{indent + r.styles.Muted.Render("Poster: ") + r.styles.Link.Render(p.PosterURL)}
	if p.HasDetail() {
		lines = append(lines, indent+r.styles.Muted.Render("IMDb:   ")+r.styles.Link.Render(p.DetailURL))
	}
	return lines
}

// SetRecommendation replaces the displayed recommendation and clears posters.
func (r *RecommendationList) SetRecommendation(rec *domain.Recommendation) {
	r.rec = rec
	r.posters = make(map[string]domain.Poster)
	r.selected = 0
}

// Recommendation returns the displayed recommendation, or nil.
func (r *RecommendationList) Recommendation() *domain.Recommendation {
	return r.rec
}

// SetPosters attaches posters by title.
func (r *RecommendationList) SetPosters(posters []domain.Poster) {
	for _, p := range posters {
		r.posters[p.Title] = p
	}
}

// Poster returns the poster attached to title.
func (r *RecommendationList) Poster(title string) (domain.Poster, bool) {
	p, ok := r.posters[title]
	return p, ok
}

// TogglePosters shows or hides poster links.
func (r *RecommendationList) TogglePosters() {
	r.showPosters = !r.showPosters
}

// ShowPosters reports whether poster links are shown.
func (r *RecommendationList) ShowPosters() bool {
	return r.showPosters
}

// Selected returns the index of the highlighted recommendation.
func (r *RecommendationList) Selected() int {
	return r.selected
}

// SelectedTitle returns the highlighted recommendation, or nil.
func (r *RecommendationList) SelectedTitle() *domain.RankedTitle {
	if r.rec == nil || r.selected >= len(r.rec.Recommendations) {
		return nil
	}
	return &r.rec.Recommendations[r.selected]
}

// MoveUp moves selection up.
func (r *RecommendationList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecommendationList) MoveDown() {
	if r.selected < r.Count()-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecommendationList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of recommendations.
func (r *RecommendationList) Count() int {
	if r.rec == nil {
		return 0
	}
	return len(r.rec.Recommendations)
}

// IsEmpty reports whether nothing is displayed.
func (r *RecommendationList) IsEmpty() bool {
	return r.rec == nil
}
