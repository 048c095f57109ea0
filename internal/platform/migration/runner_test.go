// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/panelkit/internal/platform/migration"
)

/*
TestPgx5DSN rewrites only the PostgreSQL URL schemes.
*/
func TestPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres", "postgres://u:p@db:5432/panelkit", "pgx5://u:p@db:5432/panelkit"},
		{"postgresql", "postgresql://db/panelkit", "pgx5://db/panelkit"},
		{"already_pgx5", "pgx5://db/panelkit", "pgx5://db/panelkit"},
		{"keyword_dsn", "host=db dbname=panelkit", "host=db dbname=panelkit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.Pgx5DSN(tt.dsn))
		})
	}
}
