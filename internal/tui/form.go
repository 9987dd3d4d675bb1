package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/javiermolinar/neurotask/internal/prefs"
	"github.com/javiermolinar/neurotask/internal/task"
	"github.com/javiermolinar/neurotask/internal/tui/commands"
)

// openTaskForm opens the task form, pre-filled when editing.
func (m Model) openTaskForm(t *task.Task) (tea.Model, tea.Cmd) {
	title, desc := "", ""
	priority, status := string(task.PriorityMedium), string(task.StatusTodo)

	m.editingID = ""
	if t != nil {
		m.editingID = t.ID
		title, desc = t.Title, t.Description
		priority, status = string(t.Priority), string(t.Status)
	}

	m.formTitle = &title
	m.formDesc = &desc
	m.formPriority = &priority
	m.formStatus = &status

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(m.formTitle),
			huh.NewText().Title("Description").Lines(3).Value(m.formDesc),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("Low", string(task.PriorityLow)),
					huh.NewOption("Medium", string(task.PriorityMedium)),
					huh.NewOption("High", string(task.PriorityHigh)),
				).Value(m.formPriority),
			huh.NewSelect[string]().Title("Status").
				Options(
					huh.NewOption("Todo", string(task.StatusTodo)),
					huh.NewOption("In progress", string(task.StatusInProgress)),
					huh.NewOption("Done", string(task.StatusDone)),
				).Value(m.formStatus),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.mode = ModeForm
	return m, m.form.Init()
}

// updateTaskForm routes messages to the open task form.
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.closeForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		statusCmd := m.saveTaskForm()
		m.closeForm()
		m.refreshBoard()
		return m, statusCmd
	}

	return m, cmd
}

// saveTaskForm applies the form values. An empty title on a new task is
// dropped without feedback, matching the repository's create rules.
func (m *Model) saveTaskForm() tea.Cmd {
	ctx := context.Background()
	priority := task.Priority(*m.formPriority)
	status := task.Status(*m.formStatus)

	if m.editingID == "" {
		created := m.deps.Repo.Create(ctx, task.Draft{
			Title:       *m.formTitle,
			Description: *m.formDesc,
			Priority:    priority,
			Status:      status,
		})
		if created == nil {
			return nil
		}
		return commands.Status("Created: %s", created.Title)
	}

	m.deps.Repo.Update(ctx, m.editingID, task.Patch{
		Title:       m.formTitle,
		Description: m.formDesc,
		Priority:    &priority,
		Status:      &status,
	})
	return commands.Status("Saved: %s", *m.formTitle)
}

// openPrefsForm opens the preferences form pre-filled with the current
// record.
func (m Model) openPrefsForm() (tea.Model, tea.Cmd) {
	p := m.deps.Prefs.Current()

	bufferEnabled := p.BufferTime.Enabled
	bufferBefore := strconv.Itoa(p.BufferTime.Before)
	bufferAfter := strconv.Itoa(p.BufferTime.After)
	duration := strconv.Itoa(p.DefaultDuration)
	glitch := p.VisualModes.GlitchPulse
	synthwave := p.VisualModes.Synthwave
	sound := p.VisualModes.SoundFx

	m.prefBufferEnabled = &bufferEnabled
	m.prefBufferBefore = &bufferBefore
	m.prefBufferAfter = &bufferAfter
	m.prefDuration = &duration
	m.prefGlitch = &glitch
	m.prefSynthwave = &synthwave
	m.prefSound = &sound

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Default duration (min)").
				Value(m.prefDuration).Validate(validateMinutes),
		).Title("Scheduling"),
		huh.NewGroup(
			huh.NewConfirm().Title("Buffer time").
				Affirmative("On").Negative("Off").Value(m.prefBufferEnabled),
			huh.NewInput().Title("Buffer before (min)").
				Value(m.prefBufferBefore).Validate(validateMinutes),
			huh.NewInput().Title("Buffer after (min)").
				Value(m.prefBufferAfter).Validate(validateMinutes),
		).Title("Buffer"),
		huh.NewGroup(
			huh.NewConfirm().Title("Glitch pulse").
				Affirmative("On").Negative("Off").Value(m.prefGlitch),
			huh.NewConfirm().Title("Synthwave").
				Affirmative("On").Negative("Off").Value(m.prefSynthwave),
			huh.NewConfirm().Title("Sound fx").
				Affirmative("On").Negative("Off").Value(m.prefSound),
		).Title("Modes"),
	).WithShowHelp(true).WithShowErrors(true)

	m.mode = ModePrefs
	return m, m.form.Init()
}

// updatePrefsForm routes messages to the open preferences form.
func (m Model) updatePrefsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.closeForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.savePrefsForm()
		m.closeForm()
		// The synthwave toggle changes the active theme.
		m.theme = loadTheme(m.deps)
		m.styles = NewStyles(m.theme)
		return m, commands.Status("Preferences saved")
	}

	return m, cmd
}

func (m *Model) savePrefsForm() {
	before, _ := strconv.Atoi(*m.prefBufferBefore)
	after, _ := strconv.Atoi(*m.prefBufferAfter)
	duration, _ := strconv.Atoi(*m.prefDuration)

	m.deps.Prefs.Set(context.Background(), prefs.Preferences{
		BufferTime: prefs.BufferTime{
			Enabled: *m.prefBufferEnabled,
			Before:  before,
			After:   after,
		},
		DefaultDuration: duration,
		VisualModes: prefs.VisualModes{
			GlitchPulse: *m.prefGlitch,
			Synthwave:   *m.prefSynthwave,
			SoundFx:     *m.prefSound,
		},
	})
}

func (m *Model) closeForm() {
	m.form = nil
	m.editingID = ""
	m.mode = ModeNormal
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}
