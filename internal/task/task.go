// Package task defines the core domain types and the task repository.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/neurotask/internal/slot"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("priority must be 'low', 'medium' or 'high'")
	ErrInvalidStatus   = errors.New("status must be 'todo', 'in-progress' or 'done'")
)

// CopySuffix is appended to the title of duplicated tasks.
const CopySuffix = " (Copy)"

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid returns true if the priority is a valid value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority parses a priority string.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Status represents the progress state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Valid returns true if the status is a valid value.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status string.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Task represents a single board item. ScheduledTime is nil while the task
// sits in the unscheduled list and holds a slot key once it is placed on
// the timeline. JSON field names match the durable record format.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Priority      Priority  `json:"priority"`
	Status        Status    `json:"status"`
	ScheduledTime *slot.Key `json:"scheduledTime"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Draft carries caller-supplied fields for task creation. ScheduledTime is
// deliberately absent: new tasks always start unscheduled.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	Status      Status
}

// Patch carries optional fields for a partial update. Nil fields are left
// untouched.
type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
}

// IsScheduled returns true if the task is placed on the timeline.
func (t *Task) IsScheduled() bool {
	return t.ScheduledTime != nil
}

// IsDone returns true if the task has done status.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// clone returns a shallow copy with its own ScheduledTime pointer.
func (t *Task) clone() *Task {
	c := *t
	if t.ScheduledTime != nil {
		k := *t.ScheduledTime
		c.ScheduledTime = &k
	}
	return &c
}
