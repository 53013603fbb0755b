package tui

import tea "github.com/charmbracelet/bubbletea"

// Run wraps the Bubble Tea entry point.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}
