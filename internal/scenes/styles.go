package scenes

import "github.com/charmbracelet/lipgloss"

var (
	stripesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	hudDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	vinylStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	sprayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	laneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	hitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)
)
