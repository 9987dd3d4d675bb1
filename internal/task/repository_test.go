package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/javiermolinar/neurotask/internal/slot"
)

// fakeStorage is an in-memory Storage with error injection.
type fakeStorage struct {
	records map[string]string
	getErr  error
	putErr  error
	puts    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{records: map[string]string{}}
}

func (f *fakeStorage) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.records[key]
	return v, ok, nil
}

func (f *fakeStorage) Put(_ context.Context, key, value string) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.records[key] = value
	return nil
}

func newTestRepo(t *testing.T) (*Repository, *fakeStorage) {
	t.Helper()
	st := newFakeStorage()
	r := NewRepository(st, nil)
	r.Load(context.Background())
	return r, st
}

func TestCreate(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created := r.Create(ctx, Draft{Title: "Ship report", Priority: PriorityHigh, Status: StatusTodo})
	if created == nil {
		t.Fatal("expected a task")
	}
	if created.ID == "" {
		t.Error("expected an assigned id")
	}
	if created.ScheduledTime != nil {
		t.Error("new tasks must start unscheduled")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(r.Tasks()) != 1 {
		t.Errorf("collection size = %d, want 1", len(r.Tasks()))
	}
}

func TestCreate_TrimsTitle(t *testing.T) {
	r, _ := newTestRepo(t)

	created := r.Create(context.Background(), Draft{Title: "  Water plants  "})
	if created == nil {
		t.Fatal("expected a task")
	}
	if created.Title != "Water plants" {
		t.Errorf("got title %q, want %q", created.Title, "Water plants")
	}
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		if got := r.Create(ctx, Draft{Title: title}); got != nil {
			t.Errorf("Create(%q) = %v, want nil", title, got)
		}
	}
	if len(r.Tasks()) != 0 {
		t.Errorf("collection size = %d, want 0", len(r.Tasks()))
	}
}

func TestCreate_DefaultsPriorityAndStatus(t *testing.T) {
	r, _ := newTestRepo(t)

	created := r.Create(context.Background(), Draft{Title: "x"})
	if created.Priority != PriorityMedium {
		t.Errorf("got priority %q, want medium", created.Priority)
	}
	if created.Status != StatusTodo {
		t.Errorf("got status %q, want todo", created.Status)
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		created := r.Create(ctx, Draft{Title: fmt.Sprintf("task %d", i)})
		if seen[created.ID] {
			t.Fatalf("duplicate id %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestDuplicate(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	orig := r.Create(ctx, Draft{Title: "Ship report", Description: "Q2", Priority: PriorityHigh, Status: StatusInProgress})
	key := slot.Encode(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local), 14)
	r.Move(ctx, orig.ID, &key)

	dup := r.Duplicate(ctx, orig.ID)
	if dup == nil {
		t.Fatal("expected a duplicate")
	}
	if dup.ID == orig.ID {
		t.Error("duplicate must get a new id")
	}
	if dup.Title != "Ship report (Copy)" {
		t.Errorf("got title %q, want %q", dup.Title, "Ship report (Copy)")
	}
	if dup.ScheduledTime != nil {
		t.Error("duplicates never inherit the original's slot placement")
	}
	if dup.Description != "Q2" || dup.Priority != PriorityHigh || dup.Status != StatusInProgress {
		t.Error("duplicate should copy description, priority and status")
	}
	if orig.ScheduledTime == nil || *orig.ScheduledTime != key {
		t.Error("original placement must be untouched")
	}
}

func TestDuplicate_UnknownID(t *testing.T) {
	r, _ := newTestRepo(t)

	if got := r.Duplicate(context.Background(), "nope"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if len(r.Tasks()) != 0 {
		t.Error("collection should be unchanged")
	}
}

func TestUpdate(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created := r.Create(ctx, Draft{Title: "Draft", Priority: PriorityLow})

	title := "Final"
	status := StatusDone
	r.Update(ctx, created.ID, Patch{Title: &title, Status: &status})

	got := r.Get(created.ID)
	if got.Title != "Final" {
		t.Errorf("got title %q, want %q", got.Title, "Final")
	}
	if got.Status != StatusDone {
		t.Errorf("got status %q, want done", got.Status)
	}
	if got.Priority != PriorityLow {
		t.Errorf("priority changed unexpectedly: %q", got.Priority)
	}
}

func TestUpdate_IgnoresEmptyTitle(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created := r.Create(ctx, Draft{Title: "Keep me"})
	empty := "   "
	r.Update(ctx, created.ID, Patch{Title: &empty})

	if got := r.Get(created.ID); got.Title != "Keep me" {
		t.Errorf("got title %q, want %q", got.Title, "Keep me")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	r, _ := newTestRepo(t)

	title := "x"
	r.Update(context.Background(), "nope", Patch{Title: &title}) // must not panic
	if len(r.Tasks()) != 0 {
		t.Error("collection should be unchanged")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created := r.Create(ctx, Draft{Title: "Ephemeral"})
	r.Delete(ctx, created.ID)
	if len(r.Tasks()) != 0 {
		t.Fatalf("collection size = %d, want 0", len(r.Tasks()))
	}

	r.Delete(ctx, created.ID) // second delete: same observable effect
	if len(r.Tasks()) != 0 {
		t.Errorf("collection size = %d, want 0", len(r.Tasks()))
	}
}

func TestMove(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created := r.Create(ctx, Draft{Title: "Ship report"})
	key := slot.Encode(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local), 14)

	r.Move(ctx, created.ID, &key)
	if got := r.Get(created.ID); got.ScheduledTime == nil || *got.ScheduledTime != key {
		t.Fatalf("got scheduledTime %v, want %q", got.ScheduledTime, key)
	}

	// Idempotent under repetition.
	r.Move(ctx, created.ID, &key)
	if got := r.Get(created.ID); got.ScheduledTime == nil || *got.ScheduledTime != key {
		t.Fatalf("repeated move changed placement: %v", got.ScheduledTime)
	}

	// Back to unscheduled.
	r.Move(ctx, created.ID, nil)
	if got := r.Get(created.ID); got.ScheduledTime != nil {
		t.Errorf("got scheduledTime %q, want nil", *got.ScheduledTime)
	}
}

func TestMove_UnknownID(t *testing.T) {
	r, st := newTestRepo(t)

	before := st.puts
	key := slot.Encode(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local), 14)
	r.Move(context.Background(), "nope", &key)
	if st.puts != before {
		t.Error("move of unknown id should not persist")
	}
}

func TestLoad_SeedsFromStorage(t *testing.T) {
	st := newFakeStorage()
	ctx := context.Background()

	seed := NewRepository(st, nil)
	seed.Load(ctx)
	a := seed.Create(ctx, Draft{Title: "one", Priority: PriorityHigh})
	key := slot.Encode(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local), 9)
	seed.Move(ctx, a.ID, &key)
	seed.Create(ctx, Draft{Title: "two"})

	reloaded := NewRepository(st, nil)
	reloaded.Load(ctx)

	got := reloaded.Tasks()
	if len(got) != 2 {
		t.Fatalf("reloaded %d tasks, want 2", len(got))
	}
	if got[0].Title != "one" || got[1].Title != "two" {
		t.Errorf("insertion order lost: %q, %q", got[0].Title, got[1].Title)
	}
	if got[0].ScheduledTime == nil || *got[0].ScheduledTime != key {
		t.Errorf("scheduledTime lost across reload: %v", got[0].ScheduledTime)
	}
	if got[0].Priority != PriorityHigh {
		t.Errorf("priority lost across reload: %q", got[0].Priority)
	}
}

func TestLoad_MalformedDataYieldsEmpty(t *testing.T) {
	st := newFakeStorage()
	st.records[StorageKey] = "{not json"

	r := NewRepository(st, nil)
	r.Load(context.Background())

	if len(r.Tasks()) != 0 {
		t.Errorf("got %d tasks, want 0", len(r.Tasks()))
	}
}

func TestLoad_StorageErrorYieldsEmpty(t *testing.T) {
	st := newFakeStorage()
	st.getErr = errors.New("disk on fire")

	r := NewRepository(st, nil)
	r.Load(context.Background())

	if len(r.Tasks()) != 0 {
		t.Errorf("got %d tasks, want 0", len(r.Tasks()))
	}
	// The repository must stay usable after a failed load.
	if created := r.Create(context.Background(), Draft{Title: "still works"}); created == nil {
		t.Error("repository unusable after failed load")
	}
}

func TestLoadedGate_NoWriteBeforeLoad(t *testing.T) {
	st := newFakeStorage()
	st.records[StorageKey] = `[{"id":"keep","title":"precious","priority":"low","status":"todo","scheduledTime":null,"createdAt":"2024-01-01T00:00:00Z"}]`

	r := NewRepository(st, nil)
	// Mutation before Load: applied in memory, never persisted.
	r.Create(context.Background(), Draft{Title: "early bird"})

	if st.puts != 0 {
		t.Fatal("mutation before load must not write to storage")
	}

	var stored []*Task
	if err := json.Unmarshal([]byte(st.records[StorageKey]), &stored); err != nil {
		t.Fatalf("stored record corrupted: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "keep" {
		t.Error("premature write clobbered the durable collection")
	}
}

func TestPersist_FailureKeepsMemoryAuthoritative(t *testing.T) {
	r, st := newTestRepo(t)
	st.putErr = errors.New("quota exceeded")

	created := r.Create(context.Background(), Draft{Title: "survives"})
	if created == nil {
		t.Fatal("create must not roll back on storage failure")
	}
	if r.Get(created.ID) == nil {
		t.Error("task missing from in-memory collection")
	}
}

func TestPersist_WritesWholeCollectionPerMutation(t *testing.T) {
	r, st := newTestRepo(t)
	ctx := context.Background()

	r.Create(ctx, Draft{Title: "a"})
	r.Create(ctx, Draft{Title: "b"})
	if st.puts != 2 {
		t.Errorf("got %d writes, want one per mutation (2)", st.puts)
	}

	var stored []*Task
	if err := json.Unmarshal([]byte(st.records[StorageKey]), &stored); err != nil {
		t.Fatalf("stored record not valid JSON: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("stored %d tasks, want 2", len(stored))
	}
}
