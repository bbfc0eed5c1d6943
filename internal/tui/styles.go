package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("111")
	colorMuted  = lipgloss.Color("244")
	colorError  = lipgloss.Color("203")
	colorOK     = lipgloss.Color("114")
	colorBorder = lipgloss.Color("238")

	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1).
			MarginTop(1)

	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(colorAccent).Padding(0, 2)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle   = lipgloss.NewStyle().Foreground(colorOK)
	statusErr     = lipgloss.NewStyle().Foreground(colorError)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
