// Package schedule interprets drag interactions against the task board.
//
// The controller is the single place where raw drop-zone identifiers are
// resolved into a clean optional slot key; the repository never sees a
// string that still needs parsing.
package schedule

import (
	"context"

	"github.com/javiermolinar/neurotask/internal/cue"
	"github.com/javiermolinar/neurotask/internal/logging"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
)

// Controller drives the drag lifecycle: start, end, cancel. It performs no
// geometric calculation — the drop-zone identifier reported by the
// presentation layer is the destination address.
type Controller struct {
	repo   *task.Repository
	cues   cue.Notifier
	log    *logging.Logger
	active *task.Task
}

// NewController wires the controller to its collaborators.
func NewController(repo *task.Repository, cues cue.Notifier, log *logging.Logger) *Controller {
	if cues == nil {
		cues = cue.Nop{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Controller{repo: repo, cues: cues, log: log}
}

// DragStart resolves the dragged element to a task in the live collection
// and begins a drag. An unknown id means no active drag. Returns the task
// being dragged, or nil.
func (c *Controller) DragStart(id string) *task.Task {
	t := c.repo.Get(id)
	c.active = t
	if t != nil {
		c.cues.Cue(cue.Start)
	}
	return t
}

// Dragging returns the task currently being dragged, or nil.
func (c *Controller) Dragging() *task.Task {
	return c.active
}

// DragEnd finishes a drag. An empty zoneID means the drop was released
// outside any valid zone: the operation is abandoned and the task keeps
// its prior placement. The sentinel unscheduled zone moves the task off
// the timeline; a valid slot key moves it into that slot. Unrecognized
// identifiers are rejected as abandoned drags, never stored as slot keys.
func (c *Controller) DragEnd(ctx context.Context, id, zoneID string) {
	defer func() { c.active = nil }()

	if c.active == nil || c.active.ID != id {
		return
	}
	if zoneID == "" {
		return
	}

	target := slot.ResolveDropTarget(zoneID)
	if target.Kind == slot.TargetInvalid {
		c.log.Event("DROP_REJECTED", map[string]any{
			"task_id": id,
			"zone_id": zoneID,
		})
		return
	}

	c.repo.Move(ctx, id, target.ScheduledTime())
	c.cues.Cue(cue.Drop)
}

// Cancel abandons the active drag, if any. Nothing was mutated, so there
// is nothing to roll back.
func (c *Controller) Cancel() {
	c.active = nil
}

// Delete removes the task via the keyboard boundary and emits the delete
// cue. Idempotent like the repository operation it wraps.
func (c *Controller) Delete(ctx context.Context, id string) {
	if c.repo.Get(id) == nil {
		return
	}
	c.repo.Delete(ctx, id)
	c.cues.Cue(cue.Delete)
}
