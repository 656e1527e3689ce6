package tui

import "github.com/charmbracelet/lipgloss"

const (
	minColumnWidth = 18
	columnGap      = 1
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeColumnStyle = columnStyle.BorderForeground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().Bold(true)

	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cardStyle = lipgloss.NewStyle()

	selectedCardStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
