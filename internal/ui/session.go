package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/javiermolinar/neurotask/internal/config"
	"github.com/javiermolinar/neurotask/internal/cue"
	"github.com/javiermolinar/neurotask/internal/db"
	"github.com/javiermolinar/neurotask/internal/logging"
	"github.com/javiermolinar/neurotask/internal/prefs"
	"github.com/javiermolinar/neurotask/internal/schedule"
	"github.com/javiermolinar/neurotask/internal/task"
)

// session bundles the wired scheduling core for one process lifetime:
// storage, diagnostic log, repository, preferences, drag controller.
type session struct {
	Store *db.Store
	Log   *logging.Logger
	Repo  *task.Repository
	Prefs *prefs.Store
	Drag  *schedule.Controller
}

// openSession opens storage, seeds the repository and preferences from
// their durable records, and wires the drag controller. Storage is read
// exactly once here; every later mutation mirrors itself back.
func openSession(cfg *config.Config) (*session, error) {
	log := logging.Nop()
	if cfg.Log.Path != "" {
		opened, err := logging.Open(cfg.Log.Path)
		if err != nil {
			return nil, fmt.Errorf("opening event log: %w", err)
		}
		log = opened
	}

	store, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	ctx := context.Background()
	repo := task.NewRepository(store, log)
	repo.Load(ctx)

	prefStore := prefs.NewStore(store, log)
	prefStore.Load(ctx)

	bell := &cue.Bell{
		Out:     os.Stdout,
		Enabled: func() bool { return prefStore.Current().VisualModes.SoundFx },
	}
	drag := schedule.NewController(repo, bell, log)

	return &session{
		Store: store,
		Log:   log,
		Repo:  repo,
		Prefs: prefStore,
		Drag:  drag,
	}, nil
}

// Close releases the session's resources.
func (s *session) Close() {
	_ = s.Store.Close()
	_ = s.Log.Close()
}
