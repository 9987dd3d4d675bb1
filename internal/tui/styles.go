package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/neurotask/internal/tui/theme"
)

// Minimum widths before the layout degrades.
const (
	minListWidth = 24
	minGridWidth = 30
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg        lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color
	colorSelection lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style

	// Pane frames
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	PaneTitleStyle   lipgloss.Style

	// Timeline rows
	HourStyle    lipgloss.Style
	HourNowStyle lipgloss.Style

	// Task rendering per priority
	TaskHighStyle   lipgloss.Style
	TaskMediumStyle lipgloss.Style
	TaskLowStyle    lipgloss.Style
	TaskDoneStyle   lipgloss.Style

	// Cursor and drag
	SelectedStyle lipgloss.Style
	DraggingStyle lipgloss.Style

	// Empty slots
	EmptySlotStyle lipgloss.Style

	// Status message and help line
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorFg:        theme.Color(t.Fg),
		colorFgMuted:   theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorWarning:   theme.Color(t.Warning),
		colorSelection: theme.Color(t.BgSelection),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		Padding(0, 1)

	s.PaneFocusedStyle = s.PaneStyle.
		BorderForeground(s.colorAccent)

	s.PaneTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.HourStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.HourNowStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.TaskHighStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.High))

	s.TaskMediumStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Medium))

	s.TaskLowStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Low))

	s.TaskDoneStyle = lipgloss.NewStyle().
		Foreground(theme.Color(t.Done)).
		Strikethrough(true)

	s.SelectedStyle = lipgloss.NewStyle().
		Background(s.colorSelection).
		Bold(true)

	s.DraggingStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.EmptySlotStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Faint(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	return s
}

// taskStyle returns the style for a task based on priority and status.
func (s *Styles) taskStyle(priority, status string) lipgloss.Style {
	if status == "done" {
		return s.TaskDoneStyle
	}
	switch priority {
	case "high":
		return s.TaskHighStyle
	case "low":
		return s.TaskLowStyle
	default:
		return s.TaskMediumStyle
	}
}
