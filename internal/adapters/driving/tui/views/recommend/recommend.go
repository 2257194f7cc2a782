// Package recommend provides the title query and recommendations view.
package recommend

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
)

// User-facing messages for expected query outcomes.
const (
	MsgEmptyQuery = "Please type a movie title first."
	MsgNotFound   = "Movie not found in database. Try another title."
)

// View shows the title input, the recommendations list and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TitleInput
	list      *list.RecommendationList
	statusbar *status.Bar

	recommendService driving.RecommendService
	posterService    driving.PosterService
	ctx              context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a recommend view. posterService may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	recommendService driving.RecommendService,
	posterService driving.PosterService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:           s,
		keymap:           km,
		input:            input.NewTitleInput(s),
		list:             list.NewRecommendationList(s),
		statusbar:        status.NewBar(s, km),
		recommendService: recommendService,
		posterService:    posterService,
		ctx:              context.Background(),
		width:            80,
		height:           24,
		focusInput:       true,
	}
	if recommendService != nil {
		v.statusbar.SetCatalogSize(recommendService.Stats().Entries)
	}
	return v
}

// WithContext sets the context used for queries and poster lookups.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecommendCompleted:
		return v, v.handleRecommendCompleted(msg)

	case messages.PostersLoaded:
		if rec := v.list.Recommendation(); rec != nil && rec.Query == msg.Query {
			v.list.SetPosters(msg.Posters)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		if keymap.Matches(msg.String(), v.keymap.Submit) {
			v.err = nil
			v.statusbar.SetState(status.StateRanking)
			return v, v.performRecommend(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.NewQuery):
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case keymap.Matches(msg.String(), v.keymap.Posters):
		v.list.TogglePosters()
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.Up), keymap.Matches(msg.String(), v.keymap.Down):
		v.list, _ = v.list.Update(msg)
		return v, nil
	}
	return v, nil
}

// performRecommend resolves query and ranks its neighbours off the UI loop.
func (v *View) performRecommend(query string) tea.Cmd {
	return func() tea.Msg {
		if v.recommendService == nil {
			return messages.ErrorOccurred{Err: ErrNoRecommendService}
		}
		rec, err := v.recommendService.ResolveAndRank(v.ctx, query)
		return messages.RecommendCompleted{Query: query, Recommendation: rec, Err: err}
	}
}

// fetchPosters looks up posters for every displayed title.
func (v *View) fetchPosters(rec *domain.Recommendation) tea.Cmd {
	if v.posterService == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.PostersLoaded{
			Query:   rec.Query,
			Posters: v.posterService.Posters(v.ctx, rec.AllTitles()),
		}
	}
}

func (v *View) handleRecommendCompleted(msg messages.RecommendCompleted) tea.Cmd {
	switch {
	case errors.Is(msg.Err, domain.ErrEmptyQuery):
		v.setWarning(MsgEmptyQuery)
		return nil
	case errors.Is(msg.Err, domain.ErrNotFound):
		v.setWarning(MsgNotFound)
		return nil
	case msg.Err != nil:
		v.setError(msg.Err)
		return nil
	}

	v.err = nil
	v.list.SetRecommendation(msg.Recommendation)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(msg.Recommendation.Recommendations))

	v.focusInput = false
	v.input.Blur()
	return v.fetchPosters(msg.Recommendation)
}

func (v *View) setWarning(text string) {
	v.err = nil
	v.statusbar.SetState(status.StateWarning)
	v.statusbar.SetMessage(text)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Cinematch"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the typed title.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the typed title.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Recommendation returns the displayed recommendation, or nil.
func (v *View) Recommendation() *domain.Recommendation {
	return v.list.Recommendation()
}

// SelectedIndex returns the highlighted recommendation.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Status returns the status bar state and message.
func (v *View) Status() (status.State, string) {
	return v.statusbar.State(), v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to an empty, focused input.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetRecommendation(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// ShowPosters reports whether poster links are displayed.
func (v *View) ShowPosters() bool {
	return v.list.ShowPosters()
}
