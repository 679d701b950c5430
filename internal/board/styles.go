package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/tally/internal/ui"
)

// Base styles for the board
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorChecked).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ColorError)

	CelebrateStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorMuted).
			Padding(0, 1)
)
