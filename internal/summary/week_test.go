package summary

import (
	"testing"
	"time"

	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
)

func scheduled(title string, day time.Time, hour int, status task.Status, priority task.Priority) *task.Task {
	key := slot.Encode(day, hour)
	return &task.Task{
		ID:            title,
		Title:         title,
		Priority:      priority,
		Status:        status,
		ScheduledTime: &key,
	}
}

func TestSummarizeWeek(t *testing.T) {
	// Monday 2026-03-02 through Sunday 2026-03-08
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)

	tasks := []*task.Task{
		scheduled("a", monday, 9, task.StatusDone, task.PriorityHigh),
		scheduled("b", monday, 14, task.StatusTodo, task.PriorityMedium),
		scheduled("c", monday.AddDate(0, 0, 2), 10, task.StatusTodo, task.PriorityLow),
		// Outside the week: counts toward totals only
		scheduled("d", monday.AddDate(0, 0, 9), 10, task.StatusTodo, task.PriorityLow),
		{ID: "e", Title: "e", Priority: task.PriorityMedium, Status: task.StatusTodo},
	}

	// Reference date mid-week resolves to the same Monday.
	s := SummarizeWeek(monday.AddDate(0, 0, 3), tasks)

	if !s.Start.Equal(monday) {
		t.Errorf("got start %v, want %v", s.Start, monday)
	}
	if s.Total != 5 {
		t.Errorf("got total %d, want 5", s.Total)
	}
	if s.Unscheduled != 1 {
		t.Errorf("got unscheduled %d, want 1", s.Unscheduled)
	}
	if s.Done != 1 {
		t.Errorf("got done %d, want 1", s.Done)
	}

	if got := s.Days[0].Scheduled; got != 2 {
		t.Errorf("got %d tasks on Monday, want 2", got)
	}
	if got := s.Days[0].Done; got != 1 {
		t.Errorf("got %d done on Monday, want 1", got)
	}
	if got := s.Days[2].Scheduled; got != 1 {
		t.Errorf("got %d tasks on Wednesday, want 1", got)
	}
	if got := s.Days[1].Scheduled; got != 0 {
		t.Errorf("got %d tasks on Tuesday, want 0", got)
	}

	if got := s.ByPriority[task.PriorityLow]; got != 2 {
		t.Errorf("got %d low priority, want 2", got)
	}
}

func TestBusiestDay(t *testing.T) {
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)

	s := SummarizeWeek(monday, []*task.Task{
		scheduled("a", monday, 9, task.StatusTodo, task.PriorityMedium),
		scheduled("b", monday.AddDate(0, 0, 4), 9, task.StatusTodo, task.PriorityMedium),
		scheduled("c", monday.AddDate(0, 0, 4), 11, task.StatusTodo, task.PriorityMedium),
	})

	day, ok := s.BusiestDay()
	if !ok {
		t.Fatal("expected a busiest day")
	}
	if !day.Date.Equal(monday.AddDate(0, 0, 4)) {
		t.Errorf("got %v, want Friday", day.Date)
	}
}

func TestBusiestDay_EmptyWeek(t *testing.T) {
	s := SummarizeWeek(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local), nil)
	if _, ok := s.BusiestDay(); ok {
		t.Error("empty week should have no busiest day")
	}
}
