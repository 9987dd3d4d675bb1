package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/neurotask/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureHourVisible()
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, clearStatusLater(5 * time.Second)

	case commands.StatusMsg:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusLater(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.YankedMsg:
		m.statusMsg = fmt.Sprintf("Yanked: %s", msg.Title)
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusLater(3 * time.Second)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.deps.Drag.Cancel()
			return m, tea.Quit
		}
	}

	switch m.mode {
	case ModeForm:
		return m.updateTaskForm(msg)
	case ModePrefs:
		return m.updatePrefsForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

func clearStatusLater(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
