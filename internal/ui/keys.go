package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(manual bool) string {
	s := "m manual"
	if manual {
		s = "m auto  n next scene"
	}
	return s + "  s status  q quit"
}
