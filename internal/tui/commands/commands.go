// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/neurotask/internal/task"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg carries a temporary status message.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// YankedMsg is sent after a task was copied to the clipboard.
type YankedMsg struct {
	Title string
}

// Status creates a command that shows a temporary status message.
func Status(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsg{Msg: msg}
	}
}

// Yank copies a task to the system clipboard.
func Yank(t *task.Task) tea.Cmd {
	return func() tea.Msg {
		if t == nil {
			return ErrMsg{Err: fmt.Errorf("nothing to yank")}
		}

		var b strings.Builder
		b.WriteString(t.Title)
		if t.Description != "" {
			b.WriteString("\n")
			b.WriteString(t.Description)
		}
		b.WriteString(fmt.Sprintf("\n[%s, %s]", t.Priority, t.Status))
		if t.ScheduledTime != nil {
			b.WriteString(fmt.Sprintf(" %s", *t.ScheduledTime))
		}

		if err := clipboard.WriteAll(b.String()); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return YankedMsg{Title: t.Title}
	}
}
