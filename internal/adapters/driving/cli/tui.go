package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cinematch/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for cinematch.

The catalog is indexed once at startup; every title you type is then
resolved and ranked against it.

Controls:
  ↑/k, ↓/j - Navigate recommendations
  Enter    - Recommend / Select
  n        - Type another title
  p        - Toggle poster links
  Esc      - Back
  q        - Quit (from the menu)`,
	RunE: runTUI,
}

type programRunner interface {
	Run() (tea.Model, error)
}

// newProgram is replaced in tests to avoid taking over the terminal.
var newProgram = func(model tea.Model, opts ...tea.ProgramOption) programRunner {
	return tea.NewProgram(model, opts...)
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireDeps(); err != nil {
		return err
	}

	recommender, err := loadRecommender(cmd.Context(), 0)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(recommender, deps.Posters, deps.Settings))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := newProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
