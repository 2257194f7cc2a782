package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cinematch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/views/recommend"
	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(NewPorts(&MockRecommendService{}, &MockPosterService{}, nil))
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

type ctxKey struct{}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeInto(app *App, text string) {
	for _, r := range text {
		app.Update(key(r))
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&MockRecommendService{}, nil, nil))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingRecommendService)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	assert.NotNil(t, newTestApp(t).Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&MockRecommendService{}, nil, nil))
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.True(t, app.Ready())
	assert.Equal(t, 120, app.width)
	assert.True(t, app.RecommendView().Ready())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(NewPorts(&MockRecommendService{}, nil, nil))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_MenuShowsStats(t *testing.T) {
	view := newTestApp(t).View()

	assert.Contains(t, view, "Cinematch")
	assert.Contains(t, view, "2 movies")
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	_, cmd := newTestApp(t).Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_MenuToRecommend(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewRecommend, app.CurrentView())
	assert.True(t, app.RecommendView().InputFocused())
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	assert.Contains(t, app.View(), "Show or hide poster links")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_RecommendFlow(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})
	typeInto(app, "toy")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, postersCmd := app.Update(cmd())

	rec := app.RecommendView().Recommendation()
	require.NotNil(t, rec)
	assert.Equal(t, "Toy Story", rec.Selected.Title)
	assert.Contains(t, app.View(), "Top 1 Recommendations for Toy Story")

	require.NotNil(t, postersCmd)
	app.Update(postersCmd())
	assert.Contains(t, app.View(), domain.DefaultPlaceholderURL)
}

func TestApp_RecommendEmptyQuery(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	state, text := app.RecommendView().Status()
	assert.Equal(t, status.StateWarning, state)
	assert.Equal(t, recommend.MsgEmptyQuery, text)
	assert.NoError(t, app.Err())
}

func TestApp_RecommendFailure(t *testing.T) {
	svc := &MockRecommendService{
		ResolveAndRankFunc: func(context.Context, string) (*domain.Recommendation, error) {
			return nil, errors.New("index unavailable")
		},
	}
	app, err := NewApp(NewPorts(svc, nil, nil))
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})
	typeInto(app, "toy")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.EqualError(t, app.Err(), "index unavailable")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.EqualError(t, app.RecommendView().Err(), "boom")
}

func TestApp_EscFromRecommendReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewRecommend})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_SettingsFlow(t *testing.T) {
	svc := services.NewSettingsService(memory.NewConfigStore())
	app, err := NewApp(NewPorts(&MockRecommendService{}, nil, svc))
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, loadCmd := app.Update(cmd())
	require.NotNil(t, loadCmd)
	app.Update(loadCmd())

	assert.Equal(t, messages.ViewSettings, app.CurrentView())
	assert.Contains(t, app.View(), "recommend.count")

	// posters.enabled flips in place.
	app.Update(key('j'))
	app.Update(key('j'))
	_, saveCmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, saveCmd)
	_, reloadCmd := app.Update(saveCmd())
	require.NotNil(t, reloadCmd)
	app.Update(reloadCmd())

	value, err := svc.Value("posters.enabled")
	require.NoError(t, err)
	assert.Equal(t, "false", value)
	assert.Contains(t, app.View(), "Saved posters.enabled")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_SettingsWithoutService(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewSettings})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Error(t, app.SettingsView().Err())
	assert.Contains(t, app.View(), "settings service not available")
}
