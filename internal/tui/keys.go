package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
	"github.com/javiermolinar/neurotask/internal/tui/commands"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	Today     key.Binding
	ViewMode  key.Binding
	Pane      key.Binding
	Grab      key.Binding
	Cancel    key.Binding
	New       key.Binding
	Edit      key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Status    key.Binding
	Yank      key.Binding
	Prefs     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left", "["),
			key.WithHelp("h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right", "]"),
			key.WithHelp("l", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "day/week"),
		),
		Pane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "grab/drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "duplicate"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "backspace", "delete"),
			key.WithHelp("d", "delete"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		Prefs: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preferences"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// handleKeyMsg handles keyboard input in normal mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.deps.Drag.Cancel()
		return m, tea.Quit

	// Navigation
	case key.Matches(msg, m.keys.Up):
		if m.pane == PaneUnscheduled {
			if m.listIndex > 0 {
				m.listIndex--
			}
		} else if m.cursorHour > firstHour {
			m.cursorHour--
			m.ensureHourVisible()
		}
	case key.Matches(msg, m.keys.Down):
		if m.pane == PaneUnscheduled {
			if m.listIndex < len(m.board.Unscheduled)-1 {
				m.listIndex++
			}
		} else if m.cursorHour < lastHour {
			m.cursorHour++
			m.ensureHourVisible()
		}
	case key.Matches(msg, m.keys.PrevDay):
		m.day = m.day.AddDate(0, 0, -1)
	case key.Matches(msg, m.keys.NextDay):
		m.day = m.day.AddDate(0, 0, 1)
	case key.Matches(msg, m.keys.PrevWeek):
		m.day = m.day.AddDate(0, 0, -7)
	case key.Matches(msg, m.keys.NextWeek):
		m.day = m.day.AddDate(0, 0, 7)
	case key.Matches(msg, m.keys.Today):
		m.day = dateutil.TruncateToDay(m.now())
		m.cursorHour = m.now().Hour()
		m.ensureHourVisible()
	case key.Matches(msg, m.keys.ViewMode):
		if m.view == ViewDay {
			m.view = ViewWeek
		} else {
			m.view = ViewDay
		}
	case key.Matches(msg, m.keys.Pane):
		if m.pane == PaneUnscheduled {
			m.pane = PaneTimeline
		} else {
			m.pane = PaneUnscheduled
		}

	// Drag and drop
	case key.Matches(msg, m.keys.Grab):
		return m.handleGrab(ctx)
	case key.Matches(msg, m.keys.Cancel):
		if m.deps.Drag.Dragging() != nil {
			m.deps.Drag.Cancel()
			return m, commands.Status("Drop cancelled")
		}

	// Mutations
	case key.Matches(msg, m.keys.New):
		return m.openTaskForm(nil)
	case key.Matches(msg, m.keys.Edit):
		if t := m.selectedTask(); t != nil {
			return m.openTaskForm(t)
		}
	case key.Matches(msg, m.keys.Duplicate):
		if t := m.selectedTask(); t != nil {
			dup := m.deps.Repo.Duplicate(ctx, t.ID)
			m.refreshBoard()
			if dup != nil {
				return m, commands.Status("Duplicated: %s", dup.Title)
			}
		}
	case key.Matches(msg, m.keys.Delete):
		if t := m.selectedTask(); t != nil {
			m.deps.Drag.Delete(ctx, t.ID)
			m.refreshBoard()
			return m, commands.Status("Deleted: %s", t.Title)
		}
	case key.Matches(msg, m.keys.Status):
		if t := m.selectedTask(); t != nil {
			next := nextStatus(t.Status)
			m.deps.Repo.Update(ctx, t.ID, task.Patch{Status: &next})
			m.refreshBoard()
		}
	case key.Matches(msg, m.keys.Yank):
		if t := m.selectedTask(); t != nil {
			return m, commands.Yank(t)
		}
	case key.Matches(msg, m.keys.Prefs):
		return m.openPrefsForm()
	}

	return m, nil
}

// handleGrab picks up the task under the cursor, or drops the task in
// flight onto the focused pane.
func (m Model) handleGrab(ctx context.Context) (tea.Model, tea.Cmd) {
	if active := m.deps.Drag.Dragging(); active != nil {
		zone := slot.ZoneUnscheduled
		if m.pane == PaneTimeline {
			zone = string(m.cursorSlot())
		}
		title := active.Title
		m.deps.Drag.DragEnd(ctx, active.ID, zone)
		m.refreshBoard()
		if zone == slot.ZoneUnscheduled {
			return m, commands.Status("Unscheduled: %s", title)
		}
		return m, commands.Status("Scheduled %s at %02d:00", title, m.cursorHour)
	}

	if t := m.selectedTask(); t != nil {
		m.deps.Drag.DragStart(t.ID)
		return m, commands.Status("Moving: %s (space to drop, esc to cancel)", t.Title)
	}
	return m, nil
}

func nextStatus(s task.Status) task.Status {
	switch s {
	case task.StatusTodo:
		return task.StatusInProgress
	case task.StatusInProgress:
		return task.StatusDone
	default:
		return task.StatusTodo
	}
}
