package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if height := msg.Height - 8; height > 3 {
			m.tokens.SetHeight(height)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.nextTab()
		return m, nil
	case "shift+tab", "left", "h":
		m.previousTab()
		return m, nil
	case "1", "2", "3", "4", "5":
		m.tab = Tab(msg.String()[0] - '1')
		return m, nil
	}

	if m.tab == TabTokens {
		if msg.String() == "f" {
			m.nextFilter()
			return m, nil
		}

		var cmd tea.Cmd
		m.tokens, cmd = m.tokens.Update(msg)
		return m, cmd
	}

	return m, nil
}
