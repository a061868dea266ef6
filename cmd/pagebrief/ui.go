package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	pbtea "github.com/pagebrief/pagebrief/bubbletea"
)

// Run executes the ui command.
func (c *UICmd) Run(deps *Dependencies) error {
	model := pbtea.New(deps.Fetcher, deps.Extractor, deps.Pipeline)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(deps.Ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
