// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/panelkit/internal/api"
	"github.com/taibuivan/panelkit/internal/platform/config"
	"github.com/taibuivan/panelkit/internal/platform/migration"
	pgstore "github.com/taibuivan/panelkit/internal/platform/postgres"
	redisstore "github.com/taibuivan/panelkit/internal/platform/redis"
	"github.com/taibuivan/panelkit/internal/platform/sqlite"
	"github.com/taibuivan/panelkit/internal/records"
	"github.com/taibuivan/panelkit/internal/selection"
	"github.com/taibuivan/panelkit/internal/workspace"
)

// backend bundles the state stores chosen by STATE_BACKEND.
type backend struct {
	selections selection.Repository
	tabs       workspace.Repository
	records    records.Reader
	checks     []api.Check
	closers    []func()

	// fixtures is set when records live in memory and accept definition fixtures.
	fixtures *records.MemoryRepository
}

func (b *backend) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// openBackend connects the configured stores.
//
//   - postgres: tabs and catalog records in PostgreSQL, selections in Redis.
//   - sqlite: tabs in a local SQLite file, selections and records in memory.
//   - memory: everything in process memory.
func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	switch cfg.StateBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, log)
	case config.BackendSQLite:
		return openSQLite(ctx, cfg, log)
	case config.BackendMemory:
		log.Warn("memory_backend_selected", slog.String("note", "state is lost on restart"))
		fixtures := records.NewMemoryRepository()
		return &backend{
			selections: selection.NewMemoryRepository(),
			tabs:       workspace.NewMemoryRepository(),
			records:    fixtures,
			fixtures:   fixtures,
		}, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	b := &backend{}
	b.closers = append(b.closers, func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	})

	rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
	if err != nil {
		b.close()
		return nil, err
	}
	b.closers = append(b.closers, func() {
		log.Info("closing_redis_client")
		if err := rdb.Close(); err != nil {
			log.Error("redis_close_error", slog.Any("error", err))
		}
	})

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		b.close()
		return nil, err
	}

	b.selections = selection.NewRedisRepository(rdb, cfg.SessionTTL)
	b.tabs = workspace.NewPostgresRepository(pool)
	b.records = records.NewPostgresRepository(pool)
	b.checks = []api.Check{
		{Name: "postgres", Ping: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
		{Name: "redis", Ping: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }},
	}

	return b, nil
}

func openSQLite(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	db, err := sqlite.Open(cfg.SQLitePath, log)
	if err != nil {
		return nil, err
	}

	if err := sqlite.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	fixtures := records.NewMemoryRepository()
	return &backend{
		selections: selection.NewMemoryRepository(),
		tabs:       workspace.NewSQLiteRepository(db),
		records:    fixtures,
		fixtures:   fixtures,
		checks: []api.Check{
			{Name: "sqlite", Ping: func(ctx context.Context) error { return sqlite.Ping(ctx, db) }},
		},
		closers: []func(){func() {
			log.Info("closing_sqlite_database")
			if err := db.Close(); err != nil {
				log.Error("sqlite_close_error", slog.Any("error", err))
			}
		}},
	}, nil
}
