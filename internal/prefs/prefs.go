// Package prefs owns user-configurable preferences.
//
// Preferences live in their own durable record, independent of the task
// collection. They affect presentation and behavior toggles only and never
// reach into the task data model.
package prefs

import (
	"context"
	"encoding/json"

	"github.com/javiermolinar/neurotask/internal/logging"
)

// StorageKey is the fixed record key for the serialized preferences.
const StorageKey = "neurotask-preferences"

// Storage is the named-record store preferences persist into.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}

// BufferTime configures padding around scheduled tasks.
type BufferTime struct {
	Enabled bool `json:"enabled"`
	Before  int  `json:"before"` // minutes
	After   int  `json:"after"`  // minutes
}

// VisualModes holds the presentation and audio toggles.
type VisualModes struct {
	GlitchPulse bool `json:"glitchPulse"`
	Synthwave   bool `json:"synthwave"`
	SoundFx     bool `json:"soundFx"`
}

// Preferences is the full user preferences record. JSON field names match
// the durable record format.
type Preferences struct {
	BufferTime      BufferTime  `json:"bufferTime"`
	DefaultDuration int         `json:"defaultDuration"` // minutes
	VisualModes     VisualModes `json:"visualModes"`
}

// Default returns the hard-coded preference defaults.
func Default() Preferences {
	return Preferences{
		BufferTime:      BufferTime{Enabled: false, Before: 5, After: 5},
		DefaultDuration: 30,
		VisualModes:     VisualModes{GlitchPulse: false, Synthwave: false, SoundFx: true},
	}
}

// Patch carries optional fields for a partial preferences update. Nil
// fields are left untouched.
type Patch struct {
	BufferEnabled   *bool
	BufferBefore    *int
	BufferAfter     *int
	DefaultDuration *int
	GlitchPulse     *bool
	Synthwave       *bool
	SoundFx         *bool
}

// Store owns the in-memory preferences and mirrors them into durable
// storage, same ownership model as the task repository.
type Store struct {
	storage Storage
	log     *logging.Logger
	current Preferences
	loaded  bool
}

// NewStore creates a preferences store holding the defaults until Load.
func NewStore(storage Storage, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		storage: storage,
		log:     log,
		current: Default(),
	}
}

// Current returns the in-memory preferences.
func (s *Store) Current() Preferences {
	return s.current
}

// Load merges the stored record over the defaults, field by field.
// Missing, partial or malformed stored data is repaired silently; the
// result is always a complete record.
func (s *Store) Load(ctx context.Context) {
	defer func() { s.loaded = true }()

	raw, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.log.Error("loading preferences", err)
		return
	}
	if !ok {
		return
	}

	// Unmarshal into a defaults-initialized record: only fields present
	// in the stored JSON override their default.
	merged := Default()
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		s.log.Error("decoding stored preferences", err)
		return
	}
	s.current = merged
}

// Update shallow-merges the patch into the current preferences, then
// persists. Storage failures are logged; the in-memory record stays
// authoritative.
func (s *Store) Update(ctx context.Context, patch Patch) Preferences {
	if patch.BufferEnabled != nil {
		s.current.BufferTime.Enabled = *patch.BufferEnabled
	}
	if patch.BufferBefore != nil {
		s.current.BufferTime.Before = *patch.BufferBefore
	}
	if patch.BufferAfter != nil {
		s.current.BufferTime.After = *patch.BufferAfter
	}
	if patch.DefaultDuration != nil {
		s.current.DefaultDuration = *patch.DefaultDuration
	}
	if patch.GlitchPulse != nil {
		s.current.VisualModes.GlitchPulse = *patch.GlitchPulse
	}
	if patch.Synthwave != nil {
		s.current.VisualModes.Synthwave = *patch.Synthwave
	}
	if patch.SoundFx != nil {
		s.current.VisualModes.SoundFx = *patch.SoundFx
	}

	s.persist(ctx)
	return s.current
}

// Set replaces the whole record (used by the preferences form) and
// persists.
func (s *Store) Set(ctx context.Context, p Preferences) {
	s.current = p
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	if !s.loaded {
		return
	}

	data, err := json.Marshal(s.current)
	if err != nil {
		s.log.Error("encoding preferences", err)
		return
	}
	if err := s.storage.Put(ctx, StorageKey, string(data)); err != nil {
		s.log.Error("saving preferences", err)
	}
}
