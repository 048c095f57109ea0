// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workspace

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLiteRepository implements Repository on a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a Repository over a migrated database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) Load(context context.Context, instance string) ([]Descriptor, int64, error) {
	var version int64
	err := repository.db.QueryRowContext(context, `SELECT version FROM workspace WHERE instance = ?`, instance).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return []Descriptor{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("sqlite: load workspace version: %w", err)
	}

	rows, err := repository.db.QueryContext(context, `
		SELECT name, componenttype, config, title, closable
		FROM workspacetab
		WHERE instance = ?
		ORDER BY position ASC
	`, instance)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlite: load workspace tabs: %w", err)
	}
	defer rows.Close()

	tabs := make([]Descriptor, 0)
	for rows.Next() {
		var (
			descriptor Descriptor
			config     string
		)
		if err := rows.Scan(&descriptor.Name, &descriptor.ComponentType, &config, &descriptor.Title, &descriptor.Closable); err != nil {
			return nil, 0, fmt.Errorf("sqlite: scan workspace tab: %w", err)
		}
		if err := json.Unmarshal([]byte(config), &descriptor.Config); err != nil {
			return nil, 0, fmt.Errorf("sqlite: decode config of tab %s: %w", descriptor.Name, err)
		}
		tabs = append(tabs, descriptor)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("sqlite: iterate workspace tabs: %w", err)
	}

	return tabs, version, nil
}

func (repository *SQLiteRepository) Save(context context.Context, instance string, tabs []Descriptor, expectedVersion int64) error {
	transaction, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin save workspace: %w", err)
	}
	defer func() { _ = transaction.Rollback() }()

	var result sql.Result
	if expectedVersion == 0 {
		result, err = transaction.ExecContext(context,
			`INSERT INTO workspace (instance, version) VALUES (?, 1) ON CONFLICT (instance) DO NOTHING`, instance)
	} else {
		result, err = transaction.ExecContext(context,
			`UPDATE workspace SET version = version + 1, updatedat = CURRENT_TIMESTAMP WHERE instance = ? AND version = ?`,
			instance, expectedVersion)
	}
	if err != nil {
		return fmt.Errorf("sqlite: claim workspace version: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: claim workspace version: %w", err)
	}
	if affected == 0 {
		return ErrStaleTabs
	}

	if _, err := transaction.ExecContext(context, `DELETE FROM workspacetab WHERE instance = ?`, instance); err != nil {
		return fmt.Errorf("sqlite: clear workspace tabs: %w", err)
	}

	statement, err := transaction.PrepareContext(context, `
		INSERT INTO workspacetab (instance, position, name, componenttype, config, title, closable)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare workspace tab insert: %w", err)
	}
	defer statement.Close()

	for position, descriptor := range tabs {
		config, err := json.Marshal(descriptor.Config)
		if err != nil {
			return fmt.Errorf("sqlite: encode config of tab %s: %w", descriptor.Name, err)
		}
		if _, err := statement.ExecContext(context,
			instance, position, descriptor.Name, descriptor.ComponentType, string(config), descriptor.Title, descriptor.Closable,
		); err != nil {
			return fmt.Errorf("sqlite: insert workspace tab %s: %w", descriptor.Name, err)
		}
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit save workspace: %w", err)
	}
	return nil
}
