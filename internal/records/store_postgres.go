// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/platform/dberr"
	"github.com/taibuivan/panelkit/pkg/pagination"
	"github.com/taibuivan/panelkit/pkg/slice"
)

// PostgresRepository implements Reader over the catalog tables.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL-backed Reader.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, entityType *entity.Type, scope Scope, page pagination.Params) ([]Record, int, error) {
	where, args, err := scope.Where(entityType, 1)
	if err != nil {
		return nil, 0, err
	}

	// An unset foreign key never matches; skip the round trip
	if scope.Empty() {
		return []Record{}, 0, nil
	}

	table := tableIdentifier(entityType.Table)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s;`, table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_records")
	}

	columns := slice.Map(entityType.Columns, func(column string) string {
		return pgx.Identifier{column}.Sanitize()
	})

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s ASC
		LIMIT $%d OFFSET $%d;
	`,
		strings.Join(columns, ", "),
		table,
		where,
		pgx.Identifier{entityType.PrimaryKey}.Sanitize(),
		len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(context, listQuery, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_records")
	}

	found, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_records")
	}

	return slice.Map(found, func(row map[string]any) Record { return Record(row) }), total, nil
}

// tableIdentifier sanitizes a possibly schema-qualified table name.
func tableIdentifier(table string) string {
	return pgx.Identifier(strings.Split(table, ".")).Sanitize()
}
