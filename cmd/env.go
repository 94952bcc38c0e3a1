package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/telespotter/telespotter/internal/refdata"
	"github.com/telespotter/telespotter/internal/search"
	"github.com/telespotter/telespotter/internal/source"
	"github.com/telespotter/telespotter/internal/store"
)

// env bundles the long-lived subsystems a command needs.
type env struct {
	Store    store.Store
	Registry *source.Registry
}

func initEnv(ctx context.Context) (*env, error) {
	if cfg.Refdata.OverridesPath != "" {
		if err := refdata.Load(cfg.Refdata.OverridesPath); err != nil {
			return nil, err
		}
	}

	client := source.NewClient(time.Duration(cfg.Sources.TimeoutSecs) * time.Second)

	e := &env{
		Registry: source.NewDefaultRegistry(client),
	}

	switch cfg.Store.Driver {
	case "sqlite":
		st, err := store.NewSQLite(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		e.Store = st
	case "postgres":
		st, err := store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
		if err != nil {
			return nil, err
		}
		e.Store = st
	case "none":
		// archive disabled
	default:
		return nil, eris.Errorf("unknown store driver %q (valid: sqlite, postgres, none)", cfg.Store.Driver)
	}

	if e.Store != nil {
		if err := e.Store.Migrate(ctx); err != nil {
			e.Close()
			return nil, err
		}
	}

	return e, nil
}

// orchestrator builds a search orchestrator wired to the given sink.
func (e *env) orchestrator(sink search.ProgressSink) (*search.Orchestrator, error) {
	return search.New(e.Registry, sink, search.Config{
		MaxSessions:     cfg.Search.MaxSessions,
		MaxConcurrent:   int64(cfg.Search.MaxConcurrent),
		PolitenessDelay: time.Duration(cfg.Search.PolitenessMillis) * time.Millisecond,
		Archive:         e.Store,
	})
}

func (e *env) Close() {
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			zap.L().Warn("close store", zap.Error(err))
		}
	}
}
