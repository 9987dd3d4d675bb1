// Package scheduler provides time-aware slot suggestion for the board.
package scheduler

import (
	"time"

	"github.com/javiermolinar/neurotask/internal/prefs"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
)

// How far ahead NextFreeSlot searches before giving up.
const searchDays = 14

// Scheduler suggests free slots on the board, honoring the buffer-time and
// default-duration preferences.
type Scheduler struct {
	board *task.Board
	prefs prefs.Preferences
}

// New creates a Scheduler over the given board projection.
func New(board *task.Board, p prefs.Preferences) *Scheduler {
	return &Scheduler{board: board, prefs: p}
}

// blockMinutes returns the minutes a task occupies including buffers.
func (s *Scheduler) blockMinutes() int {
	minutes := s.prefs.DefaultDuration
	if minutes <= 0 {
		minutes = prefs.Default().DefaultDuration
	}
	if s.prefs.BufferTime.Enabled {
		minutes += s.prefs.BufferTime.Before + s.prefs.BufferTime.After
	}
	return minutes
}

// hoursNeeded returns how many consecutive free slots a default task needs.
func (s *Scheduler) hoursNeeded() int {
	minutes := s.blockMinutes()
	hours := minutes / 60
	if minutes%60 != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}

// IsFree reports whether the slot holds no tasks.
func (s *Scheduler) IsFree(key slot.Key) bool {
	return len(s.board.TasksAt(key)) == 0
}

// fits reports whether enough consecutive free slots start at the given
// day and hour, without crossing midnight.
func (s *Scheduler) fits(day time.Time, hour, needed int) bool {
	if hour+needed > 24 {
		return false
	}
	for i := 0; i < needed; i++ {
		if !s.IsFree(slot.Encode(day, hour+i)) {
			return false
		}
	}
	return true
}

// NextFreeSlot returns the first slot at or after now where a task with
// the default duration fits. Partial hours round up to the next hour. The
// second return is false when nothing is free within the search horizon.
func (s *Scheduler) NextFreeSlot(now time.Time) (slot.Key, bool) {
	needed := s.hoursNeeded()

	hour := now.Hour()
	if now.Minute() > 0 || now.Second() > 0 {
		hour++
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for d := 0; d < searchDays; d++ {
		for ; hour <= 24-needed; hour++ {
			if s.fits(day, hour, needed) {
				return slot.Encode(day, hour), true
			}
		}
		day = day.AddDate(0, 0, 1)
		hour = 0
	}
	return "", false
}
