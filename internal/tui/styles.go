package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// stylize renders text with a style unless color output is disabled.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
