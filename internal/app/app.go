// Package app wires the store and domain services together for the
// command layer.
package app

import (
	"context"
	"time"

	"github.com/rnnlab/rnncourse/internal/config"
	"github.com/rnnlab/rnncourse/internal/gamify"
	"github.com/rnnlab/rnncourse/internal/progress"
	"github.com/rnnlab/rnncourse/internal/quiz"
	"github.com/rnnlab/rnncourse/internal/reflections"
	"github.com/rnnlab/rnncourse/internal/store"
)

// App holds the open store and the services built on top of it.
// Construct with Open, release with Close.
type App struct {
	Store       *store.Store
	Progress    *progress.Service
	Gamify      *gamify.Service
	Quiz        *quiz.Service
	Reflections *reflections.Service
	Config      *config.Config
}

// Open opens the database at dbPath (or the default location when
// empty) and loads every service's state. The services share one
// store; each owns its own blob.
func Open(ctx context.Context, dbPath string) (*App, error) {
	cfg := config.Load()
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	stateRepo := st.StateRepo()
	eventRepo := st.EventRepo()
	now := time.Now()

	a := &App{
		Store:       st,
		Progress:    progress.NewService(ctx, stateRepo, now),
		Gamify:      gamify.NewService(ctx, stateRepo, eventRepo),
		Quiz:        quiz.NewService(ctx, stateRepo, eventRepo),
		Reflections: reflections.NewService(ctx, stateRepo),
		Config:      cfg,
	}
	if cfg.Username != "" && cfg.Username != a.Gamify.Username() {
		if err := a.Gamify.SetUsername(ctx, cfg.Username); err != nil {
			_ = st.Close()
			return nil, err
		}
	}
	return a, nil
}

// Close releases the underlying database.
func (a *App) Close() error {
	return a.Store.Close()
}
