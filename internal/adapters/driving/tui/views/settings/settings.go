// Package settings provides the settings editor view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
)

// Section tracks which part of the view is active.
type Section int

const (
	SectionOverview Section = iota
	SectionEdit
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// secretKey is rendered masked and edited with a password field.
const secretKey = "posters.api_key"

var errNoService = errors.New("settings service not available")

// View lists every setting and edits one at a time.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings []messages.Setting
	err      error
	saved    string

	section  Section
	selected int
	input    textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.CharLimit = 512

	return &View{
		styles:          s,
		settingsService: settingsService,
		input:           input,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		keys := svc.Keys()
		settings := make([]messages.Setting, 0, len(keys))
		for _, key := range keys {
			value, err := svc.Value(key)
			if err != nil {
				return messages.SettingsLoaded{Err: err}
			}
			settings = append(settings, messages.Setting{Key: key, Value: value})
		}
		return messages.SettingsLoaded{Settings: settings}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.err = nil
		if v.selected >= len(v.settings) {
			v.selected = 0
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.saved = msg.Key
		v.closeEditor()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	if v.section == SectionEdit {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEsc {
		if v.section == SectionEdit {
			v.closeEditor()
			v.err = nil
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.section == SectionEdit {
		return v.handleEditKeys(msg)
	}
	return v.handleOverviewKeys(msg)
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(v.settings)-1 {
			v.selected++
		}
	case keyEnter:
		current, ok := v.current()
		if !ok {
			return v, nil
		}
		// Booleans flip in place.
		switch current.Value {
		case "true":
			return v, v.setValue(current.Key, "false")
		case "false":
			return v, v.setValue(current.Key, "true")
		}
		return v, v.openEditor(current)
	case "r":
		if current, ok := v.current(); ok {
			return v, v.resetValue(current.Key)
		}
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		current, ok := v.current()
		if !ok {
			return v, nil
		}
		return v, v.setValue(current.Key, strings.TrimSpace(v.input.Value()))
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) openEditor(setting messages.Setting) tea.Cmd {
	v.section = SectionEdit
	v.saved = ""
	v.input.EchoMode = textinput.EchoNormal
	v.input.Placeholder = setting.Key
	v.input.SetValue(setting.Value)
	if setting.Key == secretKey {
		v.input.EchoMode = textinput.EchoPassword
		v.input.Placeholder = "Enter API key"
		v.input.SetValue("")
	}
	v.input.CursorEnd()
	return v.input.Focus()
}

func (v *View) closeEditor() {
	v.section = SectionOverview
	v.input.SetValue("")
	v.input.Blur()
}

func (v *View) current() (messages.Setting, bool) {
	if v.selected < 0 || v.selected >= len(v.settings) {
		return messages.Setting{}, false
	}
	return v.settings[v.selected], true
}

func (v *View) setValue(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: key, Err: errNoService}
		}
		return messages.SettingsSaved{Key: key, Err: svc.Set(key, value)}
	}
}

func (v *View) resetValue(key string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: key, Err: errNoService}
		}
		return messages.SettingsSaved{Key: key, Err: svc.Reset(key)}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionEdit:
		b.WriteString(v.renderEditor())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	width := 0
	for _, s := range v.settings {
		width = max(width, len(s.Key))
	}

	for i, s := range v.settings {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		line := fmt.Sprintf("%s%-*s  %s", indicator, width, s.Key, displayValue(s))
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.saved != "" {
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("Saved %s", v.saved)))
		b.WriteString("\n")
	}
	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render("Changes apply the next time cinematch starts."))
	b.WriteString("\n")

	return b.String()
}

func (v *View) renderEditor() string {
	var b strings.Builder

	current, _ := v.current()
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Edit %s", current.Key)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Current: %s", displayValue(current))))
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")

	return b.String()
}

func (v *View) renderHelp() string {
	if v.section == SectionEdit {
		return v.styles.Muted.Render("[enter] save  [esc] cancel")
	}
	return v.styles.Muted.Render("[j/k] navigate  [enter] edit  [r] reset  [esc] back")
}

func displayValue(s messages.Setting) string {
	switch {
	case s.Key == secretKey && s.Value != "":
		return "********"
	case s.Value == "":
		return "(not set)"
	default:
		return s.Value
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to the overview.
func (v *View) Reset() {
	v.closeEditor()
	v.selected = 0
	v.saved = ""
	v.err = nil
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Selected returns the highlighted settings index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
