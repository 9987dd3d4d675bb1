// Package tui provides the terminal user interface for neurotask.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/javiermolinar/neurotask/internal/config"
	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/logging"
	"github.com/javiermolinar/neurotask/internal/prefs"
	"github.com/javiermolinar/neurotask/internal/schedule"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
	"github.com/javiermolinar/neurotask/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // Task form (create or edit) is open
	ModePrefs       // Preferences form is open
)

// Pane identifies which board pane has focus.
type Pane int

const (
	PaneUnscheduled Pane = iota
	PaneTimeline
)

// View selects how the timeline pane lays out the grid.
type View int

const (
	ViewDay  View = iota // One column of hourly slots
	ViewWeek             // Seven day columns, Monday first
)

// Timeline hour range shown per day.
const (
	firstHour = 0
	lastHour  = 23
)

// Deps bundles the wired scheduling core the TUI runs on.
type Deps struct {
	Repo   *task.Repository
	Prefs  *prefs.Store
	Drag   *schedule.Controller
	Config *config.Config
	Log    *logging.Logger
}

// Model is the main TUI model.
type Model struct {
	deps Deps

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap

	// Board projection, rebuilt after every mutation
	board *task.Board

	// State
	mode Mode
	pane Pane
	view View
	day  time.Time // Cursor day; the week view shows its whole week

	listIndex  int // Cursor in the unscheduled pane
	cursorHour int // Cursor in the timeline pane
	scroll     int // First visible hour of the timeline

	// Form state. Values are pointers so they survive model copies.
	form         *huh.Form
	editingID    string // Task being edited, empty for a new task
	formTitle    *string
	formDesc     *string
	formPriority *string
	formStatus   *string

	prefBufferEnabled *bool
	prefBufferBefore  *string
	prefBufferAfter   *string
	prefDuration      *string
	prefGlitch        *bool
	prefSynthwave     *bool
	prefSound         *bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	err error

	now func() time.Time
}

// New creates a new TUI model.
func New(deps Deps) *Model {
	t := loadTheme(deps)
	now := time.Now

	m := &Model{
		deps:       deps,
		theme:      t,
		styles:     NewStyles(t),
		keys:       newKeyMap(),
		mode:       ModeNormal,
		pane:       PaneUnscheduled,
		day:        dateutil.TruncateToDay(now()),
		cursorHour: now().Hour(),
		now:        now,
	}
	m.refreshBoard()
	m.ensureHourVisible()
	return m
}

// loadTheme resolves the active theme. The synthwave visual mode toggle
// wins over the configured theme.
func loadTheme(deps Deps) *theme.Theme {
	name := ""
	if deps.Config != nil {
		name = deps.Config.UI.Theme
	}
	if deps.Prefs != nil && deps.Prefs.Current().VisualModes.Synthwave {
		name = "synthwave"
	}

	t, err := theme.Load(name)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	return t
}

// refreshBoard rebuilds the board projection from the live collection and
// clamps the unscheduled cursor.
func (m *Model) refreshBoard() {
	m.board = task.NewBoard(m.deps.Repo.Tasks())
	if m.listIndex >= len(m.board.Unscheduled) {
		m.listIndex = len(m.board.Unscheduled) - 1
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
}

// cursorSlot returns the slot key under the timeline cursor.
func (m *Model) cursorSlot() slot.Key {
	return slot.Encode(m.day, m.cursorHour)
}

// cursorSlotAt returns the slot key for the shown day at the given hour.
func (m *Model) cursorSlotAt(hour int) slot.Key {
	return slot.Encode(m.day, hour)
}

// selectedTask returns the task under the cursor, or nil.
func (m *Model) selectedTask() *task.Task {
	switch m.pane {
	case PaneUnscheduled:
		if m.listIndex < len(m.board.Unscheduled) {
			return m.board.Unscheduled[m.listIndex]
		}
	case PaneTimeline:
		if tasks := m.board.TasksAt(m.cursorSlot()); len(tasks) > 0 {
			return tasks[0]
		}
	}
	return nil
}

// visibleHours returns how many timeline rows fit in the current height.
func (m *Model) visibleHours() int {
	// Title, day header, status line, help line and borders.
	rows := m.height - 7
	if rows < 1 {
		rows = 1
	}
	if rows > lastHour-firstHour+1 {
		rows = lastHour - firstHour + 1
	}
	return rows
}

// ensureHourVisible scrolls the timeline so the cursor hour stays on screen.
func (m *Model) ensureHourVisible() {
	visible := m.visibleHours()
	if m.cursorHour < m.scroll {
		m.scroll = m.cursorHour
	}
	if m.cursorHour >= m.scroll+visible {
		m.scroll = m.cursorHour - visible + 1
	}
	if m.scroll < firstHour {
		m.scroll = firstHour
	}
}

// Init initializes the model. Data is loaded synchronously before the
// program starts, so there is nothing to kick off.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI.
func Run(deps Deps) error {
	model := New(deps)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
