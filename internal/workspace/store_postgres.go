// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/panelkit/internal/platform/database/schema"
	"github.com/taibuivan/panelkit/internal/platform/dberr"
)

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL-backed Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Load(context context.Context, instance string) ([]Descriptor, int64, error) {
	var version int64
	versionQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`,
		schema.UIWorkspace.Version, schema.UIWorkspace.Table, schema.UIWorkspace.Instance,
	)

	err := repository.db.QueryRow(context, versionQuery, instance).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return []Descriptor{}, 0, nil
	}
	if err != nil {
		return nil, 0, dberr.Wrap(err, "load_workspace_version")
	}

	tab := schema.UIWorkspaceTab
	tabsQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		tab.Name, tab.ComponentType, tab.Config, tab.Title, tab.Closable,
		tab.Table,
		tab.Instance,
		tab.Position,
	)

	rows, err := repository.db.Query(context, tabsQuery, instance)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "load_workspace_tabs")
	}
	defer rows.Close()

	tabs := make([]Descriptor, 0)
	for rows.Next() {
		var descriptor Descriptor
		if err := rows.Scan(
			&descriptor.Name, &descriptor.ComponentType, &descriptor.Config,
			&descriptor.Title, &descriptor.Closable,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_workspace_tab")
		}
		tabs = append(tabs, descriptor)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_workspace_tabs")
	}

	return tabs, version, nil
}

/*
Save replaces the tabs of instance inside one transaction.

Description: The version row is claimed first (insert for version 0, guarded
update otherwise); zero affected rows means another writer got there first.
Tabs are then rewritten with COPY in their new order.
*/
func (repository *PostgresRepository) Save(context context.Context, instance string, tabs []Descriptor, expectedVersion int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_save_workspace")
	}
	defer func() { _ = transaction.Rollback(context) }()

	workspace := schema.UIWorkspace

	var tag pgconn.CommandTag
	if expectedVersion == 0 {
		tag, err = transaction.Exec(context, fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s) VALUES ($1, 1, NOW())
			ON CONFLICT (%s) DO NOTHING;
		`, workspace.Table, workspace.Instance, workspace.Version, workspace.UpdatedAt, workspace.Instance), instance)
	} else {
		tag, err = transaction.Exec(context, fmt.Sprintf(`
			UPDATE %s SET %s = %s + 1, %s = NOW()
			WHERE %s = $1 AND %s = $2;
		`, workspace.Table, workspace.Version, workspace.Version, workspace.UpdatedAt, workspace.Instance, workspace.Version), instance, expectedVersion)
	}
	if err != nil {
		return dberr.Wrap(err, "claim_workspace_version")
	}
	if tag.RowsAffected() == 0 {
		return ErrStaleTabs
	}

	tab := schema.UIWorkspaceTab
	if _, err := transaction.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, tab.Table, tab.Instance), instance); err != nil {
		return dberr.Wrap(err, "clear_workspace_tabs")
	}

	if len(tabs) > 0 {
		_, err = transaction.CopyFrom(
			context,
			pgx.Identifier{"ui", "workspacetab"},
			tab.Columns(),
			pgx.CopyFromSlice(len(tabs), func(i int) ([]any, error) {
				descriptor := tabs[i]
				return []any{
					instance, i, descriptor.Name, descriptor.ComponentType,
					map[string]any(descriptor.Config), descriptor.Title, descriptor.Closable,
				}, nil
			}),
		)
		if err != nil {
			return dberr.Wrap(err, "copy_workspace_tabs")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_save_workspace")
	}
	return nil
}
