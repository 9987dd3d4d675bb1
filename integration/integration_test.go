package integration

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/neurotask/internal/cue"
	"github.com/javiermolinar/neurotask/internal/db"
	"github.com/javiermolinar/neurotask/internal/prefs"
	"github.com/javiermolinar/neurotask/internal/schedule"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
)

// stack bundles a fully wired scheduling core over one database file.
type stack struct {
	store *db.Store
	repo  *task.Repository
	prefs *prefs.Store
	drag  *schedule.Controller
}

// openStack wires storage, repository, preferences and controller the way
// the application session does. Reopening the same path simulates a
// process restart.
func openStack(t *testing.T, dbPath string) *stack {
	t.Helper()

	store, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	repo := task.NewRepository(store, nil)
	repo.Load(ctx)

	prefStore := prefs.NewStore(store, nil)
	prefStore.Load(ctx)

	return &stack{
		store: store,
		repo:  repo,
		prefs: prefStore,
		drag:  schedule.NewController(repo, cue.Nop{}, nil),
	}
}

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

func TestTasksSurviveRestart(t *testing.T) {
	path := testDBPath(t)
	ctx := context.Background()

	first := openStack(t, path)
	created := first.repo.Create(ctx, task.Draft{
		Title:    "Write quarterly review",
		Priority: task.PriorityHigh,
	})
	if created == nil {
		t.Fatal("create failed")
	}

	key := slot.Encode(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local), 9)
	first.drag.DragStart(created.ID)
	first.drag.DragEnd(ctx, created.ID, string(key))

	// Restart
	second := openStack(t, path)
	got := second.repo.Get(created.ID)
	if got == nil {
		t.Fatal("task lost across restart")
	}
	if got.Title != "Write quarterly review" {
		t.Errorf("got title %q", got.Title)
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("got priority %q", got.Priority)
	}
	if got.ScheduledTime == nil || *got.ScheduledTime != key {
		t.Errorf("got scheduled time %v, want %q", got.ScheduledTime, key)
	}
}

func TestDragLifecycle_EndToEnd(t *testing.T) {
	path := testDBPath(t)
	ctx := context.Background()
	s := openStack(t, path)

	a := s.repo.Create(ctx, task.Draft{Title: "Plan roadmap"})
	b := s.repo.Create(ctx, task.Draft{Title: "Fix login bug"})

	day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local)

	// Schedule both into the same slot: slots accept any number of tasks.
	key := slot.Encode(day, 14)
	s.drag.DragStart(a.ID)
	s.drag.DragEnd(ctx, a.ID, string(key))
	s.drag.DragStart(b.ID)
	s.drag.DragEnd(ctx, b.ID, string(key))

	board := task.NewBoard(s.repo.Tasks())
	if got := len(board.TasksAt(key)); got != 2 {
		t.Fatalf("got %d tasks in slot, want 2", got)
	}

	// Drop one back on the unscheduled list.
	s.drag.DragStart(a.ID)
	s.drag.DragEnd(ctx, a.ID, slot.ZoneUnscheduled)

	// An unrecognized zone must not move anything.
	s.drag.DragStart(b.ID)
	s.drag.DragEnd(ctx, b.ID, "trash-bin")

	second := openStack(t, path)
	gotA := second.repo.Get(a.ID)
	gotB := second.repo.Get(b.ID)
	if gotA.ScheduledTime != nil {
		t.Errorf("task a should be unscheduled, got %q", *gotA.ScheduledTime)
	}
	if gotB.ScheduledTime == nil || *gotB.ScheduledTime != key {
		t.Errorf("task b should still sit at %q, got %v", key, gotB.ScheduledTime)
	}
}

func TestPreferencesSurviveRestart(t *testing.T) {
	path := testDBPath(t)
	ctx := context.Background()

	first := openStack(t, path)
	duration := 60
	enabled := true
	first.prefs.Update(ctx, prefs.Patch{
		DefaultDuration: &duration,
		BufferEnabled:   &enabled,
	})

	second := openStack(t, path)
	got := second.prefs.Current()
	if got.DefaultDuration != 60 {
		t.Errorf("got duration %d, want 60", got.DefaultDuration)
	}
	if !got.BufferTime.Enabled {
		t.Error("buffer should stay enabled")
	}
	// Untouched fields keep their defaults.
	if !got.VisualModes.SoundFx {
		t.Error("sound fx default should survive the partial update")
	}
}

func TestStoredRecords_UseNamedKeys(t *testing.T) {
	path := testDBPath(t)
	ctx := context.Background()

	s := openStack(t, path)
	s.repo.Create(ctx, task.Draft{Title: "Check record layout"})

	raw, ok, err := s.store.Get(ctx, db.KeyTasks)
	if err != nil || !ok {
		t.Fatalf("task record missing: ok=%v err=%v", ok, err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("task record is not a JSON array: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d records, want 1", len(decoded))
	}
	for _, field := range []string{"id", "title", "priority", "status", "scheduledTime", "createdAt"} {
		if _, present := decoded[0][field]; !present {
			t.Errorf("record missing field %q", field)
		}
	}
}

func TestDuplicateAcrossRestart(t *testing.T) {
	path := testDBPath(t)
	ctx := context.Background()

	first := openStack(t, path)
	orig := first.repo.Create(ctx, task.Draft{Title: "Water the plants"})
	key := slot.Encode(time.Date(2026, time.September, 3, 0, 0, 0, 0, time.Local), 8)
	first.repo.Move(ctx, orig.ID, &key)
	first.repo.Duplicate(ctx, orig.ID)

	second := openStack(t, path)
	tasks := second.repo.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[1].Title != "Water the plants (Copy)" {
		t.Errorf("got title %q", tasks[1].Title)
	}
	if tasks[1].ScheduledTime != nil {
		t.Error("the copy must spawn unscheduled")
	}
	if tasks[0].ScheduledTime == nil {
		t.Error("the original must keep its slot")
	}
}

func TestCorruptTaskRecord_YieldsEmptyBoard(t *testing.T) {
	path := testDBPath(t)
	ctx := context.Background()

	store, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Put(ctx, db.KeyTasks, "{not json"); err != nil {
		t.Fatalf("failed to seed corrupt record: %v", err)
	}
	_ = store.Close()

	s := openStack(t, path)
	if got := len(s.repo.Tasks()); got != 0 {
		t.Errorf("got %d tasks from a corrupt record, want 0", got)
	}

	// The session still works and the next mutation repairs the record.
	s.repo.Create(ctx, task.Draft{Title: "Fresh start"})
	second := openStack(t, path)
	if got := len(second.repo.Tasks()); got != 1 {
		t.Errorf("got %d tasks after repair, want 1", got)
	}
}
