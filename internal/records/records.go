// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package records reads the rows a collection pane shows, filtered by its scope.

A [Scope] maps column names to required values. A nil value never matches, so
a collection whose container is not selected yet resolves to an empty result
set rather than to every row (or to the rows whose foreign key IS NULL).
*/
package records

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/pkg/convert"
	"github.com/taibuivan/panelkit/pkg/pagination"
)

// Record is one row keyed by column name.
type Record map[string]any

// Reader lists scoped records of an entity type.
type Reader interface {

	/*
		List returns one page of records matching scope, plus the total count.

		Parameters:
		  - context: context.Context
		  - entityType: *entity.Type
		  - scope: Scope
		  - page: pagination.Params

		Returns:
		  - []Record: Matching rows ordered by primary key
		  - int: Total matching count
		  - error: Validation (unknown scope column) or storage failures
	*/
	List(context context.Context, entityType *entity.Type, scope Scope, page pagination.Params) ([]Record, int, error)
}

// # Scope

// Scope is a column → value filter.
type Scope map[string]any

// Merge returns a new Scope holding s overlaid by over.
func (s Scope) Merge(over Scope) Scope {
	merged := make(Scope, len(s)+len(over))
	maps.Copy(merged, s)
	maps.Copy(merged, over)
	return merged
}

// Empty reports whether some key is pinned to nil, which matches no record.
func (s Scope) Empty() bool {
	for _, value := range s {
		if value == nil {
			return true
		}
	}
	return false
}

// Validate ensures every key is a column of entityType and every value is a scalar.
func (s Scope) Validate(entityType *entity.Type) error {
	for _, column := range s.columns() {
		if !entityType.HasColumn(column) {
			return apperr.ValidationError(fmt.Sprintf("%s has no column %q", entityType.Name, column))
		}
		if value := s[column]; value != nil && convert.ToString(value) == "" && value != "" {
			return apperr.ValidationError(fmt.Sprintf("scope value for %q must be a scalar", column))
		}
	}
	return nil
}

/*
Where renders the scope as a PostgreSQL predicate.

Description: Identifiers are sanitized; values are bound as text parameters
starting at $firstArg so ids compare equal regardless of column type. A nil
value renders FALSE and an empty scope renders TRUE.

Returns:
  - string: Predicate for a WHERE clause
  - []any: Bound arguments
  - error: Scope validation failures
*/
func (s Scope) Where(entityType *entity.Type, firstArg int) (string, []any, error) {
	if err := s.Validate(entityType); err != nil {
		return "", nil, err
	}
	if len(s) == 0 {
		return "TRUE", nil, nil
	}

	conditions := make([]string, 0, len(s))
	args := make([]any, 0, len(s))

	for _, column := range s.columns() {
		value := s[column]
		if value == nil {
			conditions = append(conditions, "FALSE")
			continue
		}

		args = append(args, convert.ToString(value))
		conditions = append(conditions, fmt.Sprintf("%s::text = $%d", pgx.Identifier{column}.Sanitize(), firstArg+len(args)-1))
	}

	return strings.Join(conditions, " AND "), args, nil
}

// Matches reports whether record satisfies the scope.
func (s Scope) Matches(record Record) bool {
	for column, value := range s {
		if value == nil {
			return false
		}
		if convert.ToString(record[column]) != convert.ToString(value) {
			return false
		}
	}
	return true
}

// columns returns the scope keys in sorted order.
func (s Scope) columns() []string {
	return slices.Sorted(maps.Keys(s))
}
