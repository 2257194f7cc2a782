// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// RecommendCompleted carries the ranked neighbours of a query back to the model.
type RecommendCompleted struct {
	Query          string
	Recommendation *domain.Recommendation
	Err            error
}

// PostersLoaded carries posters for the titles of a recommendation,
// selected title first.
type PostersLoaded struct {
	Query   string
	Posters []domain.Poster
}

// Setting is one settings key with its rendered value.
type Setting struct {
	Key   string
	Value string
}

// SettingsLoaded carries the current settings values.
type SettingsLoaded struct {
	Settings []Setting
	Err      error
}

// SettingsSaved reports the outcome of changing or resetting a key.
type SettingsSaved struct {
	Key string
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewRecommend is the query input and recommendations view.
	ViewRecommend
	// ViewSettings edits persisted settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewRecommend:
		return "recommend"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
