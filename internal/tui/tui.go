// Package tui provides the interactive terminal UI for IntelliProject.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/intelliproject/internal/recommend"
)

// Run starts the full-screen TUI and blocks until the user quits.
func Run(client recommend.Recommender, opts Options, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	p := tea.NewProgram(NewApp(client, opts), programOpts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
