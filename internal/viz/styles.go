package viz

import "github.com/charmbracelet/lipgloss"

// Styles for the CLI summary output.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00b0d0"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)
