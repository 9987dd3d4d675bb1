package task

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/neurotask/internal/logging"
	"github.com/javiermolinar/neurotask/internal/slot"
)

// Storage is the named-record store the repository mirrors itself into.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}

// StorageKey is the fixed record key for the serialized task collection.
const StorageKey = "neurotask-data"

// Repository owns the task collection for the lifetime of the session.
// The in-memory slice is the single source of truth; durable storage is a
// mirror that is read once on Load and overwritten wholesale after every
// mutation. Storage failures never roll back an in-memory mutation.
type Repository struct {
	storage Storage
	log     *logging.Logger
	tasks   []*Task
	loaded  bool

	now   func() time.Time
	newID func() string
}

// NewRepository creates an empty, not-yet-loaded repository.
func NewRepository(storage Storage, log *logging.Logger) *Repository {
	if log == nil {
		log = logging.Nop()
	}
	return &Repository{
		storage: storage,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load seeds the collection from durable storage. Missing or malformed
// data yields an empty collection, logged, never a hard failure. Until
// Load runs, mutations are applied in memory but not persisted, so a
// premature write cannot clobber the stored collection.
func (r *Repository) Load(ctx context.Context) {
	defer func() { r.loaded = true }()

	raw, ok, err := r.storage.Get(ctx, StorageKey)
	if err != nil {
		r.log.Error("loading tasks", err)
		return
	}
	if !ok {
		return
	}

	var tasks []*Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		r.log.Error("decoding stored tasks", err)
		return
	}
	r.tasks = tasks
}

// Tasks returns the live collection in insertion order.
func (r *Repository) Tasks() []*Task {
	return r.tasks
}

// Get returns the task with the given id, or nil.
func (r *Repository) Get(id string) *Task {
	for _, t := range r.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Create appends a new unscheduled task built from the draft. A draft with
// an empty or whitespace-only title is silently rejected and returns nil.
// Invalid priority or status fall back to medium/todo.
func (r *Repository) Create(ctx context.Context, draft Draft) *Task {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil
	}

	priority := draft.Priority
	if !priority.Valid() {
		priority = PriorityMedium
	}
	status := draft.Status
	if !status.Valid() {
		status = StatusTodo
	}

	t := &Task{
		ID:            r.newID(),
		Title:         title,
		Description:   draft.Description,
		Priority:      priority,
		Status:        status,
		ScheduledTime: nil, // new tasks always start unscheduled
		CreatedAt:     r.now(),
	}
	r.tasks = append(r.tasks, t)
	r.persist(ctx)
	return t
}

// Duplicate creates a copy of the task with the given id. The copy gets a
// fresh id and timestamp, a suffixed title, and spawns unscheduled no
// matter where the original lives. Unknown id is a no-op.
func (r *Repository) Duplicate(ctx context.Context, id string) *Task {
	orig := r.Get(id)
	if orig == nil {
		return nil
	}

	dup := orig.clone()
	dup.ID = r.newID()
	dup.Title = orig.Title + CopySuffix
	dup.ScheduledTime = nil
	dup.CreatedAt = r.now()

	r.tasks = append(r.tasks, dup)
	r.persist(ctx)
	return dup
}

// Update merges the non-nil patch fields into the matching task. Unknown
// id is a no-op. An empty trimmed title in the patch is ignored so a task
// can never be renamed to nothing.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) {
	t := r.Get(id)
	if t == nil {
		return
	}

	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			t.Title = title
		}
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil && patch.Priority.Valid() {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil && patch.Status.Valid() {
		t.Status = *patch.Status
	}

	r.persist(ctx)
}

// Delete removes the matching task. Idempotent: deleting an absent id is
// a no-op.
func (r *Repository) Delete(ctx context.Context, id string) {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persist(ctx)
			return
		}
	}
}

// Move sets the ScheduledTime of the matching task: a slot key places it
// on the timeline, nil returns it to the unscheduled list. Unknown id is
// a no-op. This is the sole mutation path for drag-and-drop.
func (r *Repository) Move(ctx context.Context, id string, target *slot.Key) {
	t := r.Get(id)
	if t == nil {
		return
	}

	if target == nil {
		t.ScheduledTime = nil
	} else {
		k := *target
		t.ScheduledTime = &k
	}
	r.persist(ctx)
}

// persist mirrors the whole collection into durable storage. Before the
// first Load completes nothing is written; failures are logged and the
// in-memory state stays authoritative.
func (r *Repository) persist(ctx context.Context) {
	if !r.loaded {
		return
	}

	data, err := json.Marshal(r.tasksOrEmpty())
	if err != nil {
		r.log.Error("encoding tasks", err)
		return
	}
	if err := r.storage.Put(ctx, StorageKey, string(data)); err != nil {
		r.log.Error("saving tasks", err)
	}
}

// tasksOrEmpty keeps the stored record a JSON array even when empty.
func (r *Repository) tasksOrEmpty() []*Task {
	if r.tasks == nil {
		return []*Task{}
	}
	return r.tasks
}
