package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	if m.width < minListWidth+minGridWidth {
		return "Terminal too small"
	}

	if m.mode == ModeForm || m.mode == ModePrefs {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderTitle(),
			m.form.View(),
		)
	}

	listWidth := m.width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	gridWidth := m.width - listWidth - 2

	grid := m.renderTimeline(gridWidth)
	if m.view == ViewWeek {
		grid = m.renderWeek(gridWidth)
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderUnscheduled(listWidth),
		grid,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		panes,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderTitle() string {
	title := "neurotask"
	if m.deps.Prefs != nil && m.deps.Prefs.Current().VisualModes.GlitchPulse {
		title = "n̷eurotask"
	}

	day := m.day.Format("Mon 2006-01-02")
	if dateutil.SameDay(m.day, m.now()) {
		day += " (today)"
	}
	if m.view == ViewWeek {
		day = "Week of " + dateutil.StartOfWeek(m.day).Format("Mon 2006-01-02")
	}

	counts := fmt.Sprintf("%d unscheduled · %d scheduled",
		len(m.board.Unscheduled), m.board.Scheduled())

	return m.styles.TitleStyle.Render(fmt.Sprintf("%s  %s  %s", title, day, counts))
}

func (m Model) renderUnscheduled(width int) string {
	inner := width - 4
	dragging := m.deps.Drag.Dragging()

	var lines []string
	lines = append(lines, m.styles.PaneTitleStyle.Render("Unscheduled"))

	if len(m.board.Unscheduled) == 0 {
		lines = append(lines, m.styles.EmptySlotStyle.Render("nothing here"))
	}
	for i, t := range m.board.Unscheduled {
		line := m.renderTaskLine(t, inner, dragging)
		if m.pane == PaneUnscheduled && i == m.listIndex {
			line = m.styles.SelectedStyle.Render(truncate("> "+taskLabel(t), inner))
		}
		lines = append(lines, line)
	}

	style := m.styles.PaneStyle
	if m.pane == PaneUnscheduled {
		style = m.styles.PaneFocusedStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTimeline(width int) string {
	inner := width - 4
	dragging := m.deps.Drag.Dragging()
	visible := m.visibleHours()

	var lines []string
	lines = append(lines, m.styles.PaneTitleStyle.Render("Timeline"))

	for hour := m.scroll; hour < m.scroll+visible && hour <= lastHour; hour++ {
		hourLabel := fmt.Sprintf("%02d:00", hour)
		hourStyle := m.styles.HourStyle
		if dateutil.SameDay(m.day, m.now()) && hour == m.now().Hour() {
			hourStyle = m.styles.HourNowStyle
		}

		tasks := m.board.TasksAt(m.cursorSlotAt(hour))
		cell := m.renderSlotCell(tasks, inner-7, dragging)

		line := fmt.Sprintf("%s %s", hourStyle.Render(hourLabel), cell)
		if m.pane == PaneTimeline && hour == m.cursorHour {
			line = m.styles.SelectedStyle.Render(truncate(fmt.Sprintf("%s %s", hourLabel, plainSlotCell(tasks)), inner))
		}
		lines = append(lines, line)
	}

	style := m.styles.PaneStyle
	if m.pane == PaneTimeline {
		style = m.styles.PaneFocusedStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderWeek lays the timeline out as seven day columns, Monday first.
// The cursor day picks the active column, so grab and drop address the
// same slot keys as the day view.
func (m Model) renderWeek(width int) string {
	inner := width - 4
	colWidth := (inner - 6) / 7
	if colWidth < 4 {
		colWidth = 4
	}
	dragging := m.deps.Drag.Dragging()
	start := dateutil.StartOfWeek(m.day)

	var lines []string
	lines = append(lines, m.styles.PaneTitleStyle.Render("Week"))

	header := strings.Repeat(" ", 6)
	for i := 0; i < 7; i++ {
		col := start.AddDate(0, 0, i)
		style := m.styles.HourStyle
		if dateutil.SameDay(col, m.now()) {
			style = m.styles.HourNowStyle
		}
		header += style.Render(pad(truncate(col.Format("Mon 02"), colWidth-1), colWidth))
	}
	lines = append(lines, header)

	visible := m.visibleHours() - 1
	if visible < 1 {
		visible = 1
	}
	for hour := m.scroll; hour < m.scroll+visible && hour <= lastHour; hour++ {
		cells := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			col := start.AddDate(0, 0, i)
			tasks := m.board.TasksAt(slot.Encode(col, hour))

			style := m.styles.EmptySlotStyle
			if len(tasks) > 0 {
				style = m.styles.taskStyle(string(tasks[0].Priority), string(tasks[0].Status))
				if dragging != nil && dragging.ID == tasks[0].ID {
					style = m.styles.DraggingStyle
				}
			}
			if m.pane == PaneTimeline && hour == m.cursorHour && dateutil.SameDay(col, m.day) {
				style = m.styles.SelectedStyle
			}
			cells = append(cells, style.Render(pad(truncate(weekCellLabel(tasks), colWidth-1), colWidth)))
		}
		line := fmt.Sprintf("%s %s",
			m.styles.HourStyle.Render(fmt.Sprintf("%02d:00", hour)),
			strings.Join(cells, ""))
		lines = append(lines, line)
	}

	style := m.styles.PaneStyle
	if m.pane == PaneTimeline {
		style = m.styles.PaneFocusedStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// weekCellLabel squeezes a slot's tasks into one column cell.
func weekCellLabel(tasks []*task.Task) string {
	switch len(tasks) {
	case 0:
		return "·"
	case 1:
		return taskLabel(tasks[0])
	default:
		return fmt.Sprintf("%s +%d", taskLabel(tasks[0]), len(tasks)-1)
	}
}

func (m Model) renderSlotCell(tasks []*task.Task, width int, dragging *task.Task) string {
	if len(tasks) == 0 {
		return m.styles.EmptySlotStyle.Render(truncate("·", width))
	}

	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		label := taskLabel(t)
		style := m.styles.taskStyle(string(t.Priority), string(t.Status))
		if dragging != nil && dragging.ID == t.ID {
			style = m.styles.DraggingStyle
		}
		parts = append(parts, style.Render(truncate(label, width)))
	}
	return strings.Join(parts, m.styles.EmptySlotStyle.Render(" · "))
}

// plainSlotCell renders a slot without per-task colors, for the cursor row
// where the selection background wins.
func plainSlotCell(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return "·"
	}
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		parts = append(parts, taskLabel(t))
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderTaskLine(t *task.Task, width int, dragging *task.Task) string {
	label := taskLabel(t)
	style := m.styles.taskStyle(string(t.Priority), string(t.Status))
	if dragging != nil && dragging.ID == t.ID {
		style = m.styles.DraggingStyle
	}
	return style.Render(truncate("  "+label, width))
}

func (m Model) renderStatus() string {
	if dragging := m.deps.Drag.Dragging(); dragging != nil && m.statusMsg == "" {
		return m.styles.DraggingStyle.Render(fmt.Sprintf(" Moving: %s", dragging.Title))
	}
	if m.statusMsg == "" {
		return " "
	}
	return m.styles.StatusStyle.Render(" " + m.statusMsg)
}

func (m Model) renderHelp() string {
	help := "space grab/drop · tab pane · w week · n new · e edit · c dup · d del · s status · y yank · p prefs · q quit"
	return m.styles.HelpStyle.Render(" " + help)
}

func taskLabel(t *task.Task) string {
	marker := "○"
	switch t.Status {
	case task.StatusInProgress:
		marker = "◐"
	case task.StatusDone:
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, t.Title)
}

// pad right-fills s with spaces to the given column width.
func pad(s string, width int) string {
	if w := len([]rune(s)); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
