// Package summary provides shared week summary utilities.
package summary

import (
	"time"

	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/task"
)

// DayStats aggregates the scheduled load of one day.
type DayStats struct {
	Date      time.Time
	Scheduled int
	Done      int
}

// WeekSummary holds aggregated board data for one week.
type WeekSummary struct {
	Start time.Time // Monday
	End   time.Time // Sunday

	Days        [7]DayStats
	Unscheduled int
	Done        int
	Total       int
	ByPriority  map[task.Priority]int
}

// SummarizeWeek aggregates the task collection for the week containing the
// reference date. Tasks scheduled outside the week still count toward the
// totals, just not toward any day.
func SummarizeWeek(ref time.Time, tasks []*task.Task) *WeekSummary {
	start := dateutil.StartOfWeek(ref)
	end := start.AddDate(0, 0, 6)

	s := &WeekSummary{
		Start:      start,
		End:        end,
		ByPriority: make(map[task.Priority]int),
	}
	for i := range s.Days {
		s.Days[i].Date = start.AddDate(0, 0, i)
	}

	for _, t := range tasks {
		s.Total++
		s.ByPriority[t.Priority]++
		if t.IsDone() {
			s.Done++
		}

		if t.ScheduledTime == nil {
			s.Unscheduled++
			continue
		}
		// Match by calendar date, not elapsed hours: DST days are not
		// 24 hours long.
		day := t.ScheduledTime.Date()
		for i := range s.Days {
			if dateutil.SameDay(s.Days[i].Date, day) {
				s.Days[i].Scheduled++
				if t.IsDone() {
					s.Days[i].Done++
				}
				break
			}
		}
	}

	return s
}

// BusiestDay returns the day with the most scheduled tasks, or the zero
// value when nothing is scheduled this week.
func (s *WeekSummary) BusiestDay() (DayStats, bool) {
	best := DayStats{}
	found := false
	for _, d := range s.Days {
		if d.Scheduled > best.Scheduled {
			best = d
			found = true
		}
	}
	return best, found
}
