package task

import (
	"github.com/javiermolinar/neurotask/internal/slot"
)

// Board is the pure view projection of a task collection: the unscheduled
// list plus per-slot groupings. It holds no state of its own and must be
// rebuilt whenever the collection changes.
type Board struct {
	Unscheduled []*Task
	BySlot      map[slot.Key][]*Task
}

// NewBoard partitions tasks by their ScheduledTime. Insertion order is
// preserved within the unscheduled list and within each slot group.
// Multiple tasks may share a slot; no conflict detection happens here.
func NewBoard(tasks []*Task) *Board {
	b := &Board{
		BySlot: make(map[slot.Key][]*Task),
	}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.ScheduledTime == nil {
			b.Unscheduled = append(b.Unscheduled, t)
			continue
		}
		key := *t.ScheduledTime
		b.BySlot[key] = append(b.BySlot[key], t)
	}
	return b
}

// TasksAt returns the tasks grouped under the exact slot key.
func (b *Board) TasksAt(key slot.Key) []*Task {
	return b.BySlot[key]
}

// Scheduled returns the total number of scheduled tasks.
func (b *Board) Scheduled() int {
	n := 0
	for _, group := range b.BySlot {
		n += len(group)
	}
	return n
}
