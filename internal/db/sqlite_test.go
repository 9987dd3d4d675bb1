package db

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_Missing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get(context.Background(), KeyTasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected missing record, got ok=true")
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyTasks, `[{"id":"a"}]`); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected record to exist")
	}
	if got != `[{"id":"a"}]` {
		t.Errorf("got %q, want %q", got, `[{"id":"a"}]`)
	}
}

func TestPut_Overwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyPreferences, `{"defaultDuration":30}`); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := s.Put(ctx, KeyPreferences, `{"defaultDuration":60}`); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, _, err := s.Get(ctx, KeyPreferences)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"defaultDuration":60}` {
		t.Errorf("got %q, want the overwritten value", got)
	}
}

func TestKeys_Independent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyTasks, `[]`); err != nil {
		t.Fatalf("put tasks: %v", err)
	}

	_, ok, err := s.Get(ctx, KeyPreferences)
	if err != nil {
		t.Fatalf("get prefs: %v", err)
	}
	if ok {
		t.Error("preferences record should be independent of tasks record")
	}
}
