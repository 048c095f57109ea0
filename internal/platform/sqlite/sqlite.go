// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sqlite opens the single-node state database.

It backs workspace tabs when the server runs without PostgreSQL. The schema
mirrors the ui.* tables of the PostgreSQL migrations and is applied in-process,
one transaction per version, tracked in schema_migrations.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Pure-Go driver registering "sqlite".
	_ "modernc.org/sqlite"
)

const pingTimeout = 2 * time.Second

// migrations are applied in order; the version is the index plus one.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS workspace (
			instance  TEXT PRIMARY KEY,
			version   INTEGER NOT NULL,
			updatedat DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS workspacetab (
			instance      TEXT    NOT NULL REFERENCES workspace(instance) ON DELETE CASCADE,
			position      INTEGER NOT NULL,
			name          TEXT    NOT NULL,
			componenttype TEXT    NOT NULL,
			config        TEXT    NOT NULL DEFAULT '{}',
			title         TEXT    NOT NULL,
			closable      INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (instance, position),
			UNIQUE (instance, name)
		)`,
	},
}

// Open opens the database at dsn with WAL, foreign keys and a busy timeout.
func Open(dsn string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// One writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: exec %q: %w", pragma, err)
		}
	}

	logger.Info("sqlite database opened", slog.String("dsn", dsn))
	return db, nil
}

// Migrate applies pending schema versions.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("sqlite: create schema_migrations: %w", err)
	}

	for i, statements := range migrations {
		version := i + 1

		var exists int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("sqlite: check migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		if err := apply(ctx, db, version, statements); err != nil {
			return err
		}
	}

	return nil
}

func apply(ctx context.Context, db *sql.DB, version int, statements []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin migration %d: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("sqlite: migration %d: %w", version, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return fmt.Errorf("sqlite: record migration %d: %w", version, err)
	}

	return tx.Commit()
}

// Ping verifies that the database answers.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}
