package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of the note window. Colors are ANSI 256 codes.
type Theme struct {
	Title       lipgloss.Style
	Editing     lipgloss.Style
	Panel       lipgloss.Style
	ActivePanel lipgloss.Style
	Warning     lipgloss.Style
	Help        lipgloss.Style
}

// DefaultTheme returns the standard palette.
func DefaultTheme() Theme {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")),
		Editing:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Panel:       panel,
		ActivePanel: panel.BorderForeground(lipgloss.Color("214")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
