// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package records

import (
	"context"
	"sync"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/pkg/pagination"
	"github.com/taibuivan/panelkit/pkg/slice"
)

// MemoryRepository implements Reader over rows seeded in process memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string][]Record
}

// NewMemoryRepository creates an empty in-memory Reader.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string][]Record)}
}

// Seed appends rows for the named entity type.
func (repository *MemoryRepository) Seed(typeName string, rows ...Record) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.rows[typeName] = append(repository.rows[typeName], rows...)
}

func (repository *MemoryRepository) List(_ context.Context, entityType *entity.Type, scope Scope, page pagination.Params) ([]Record, int, error) {
	if err := scope.Validate(entityType); err != nil {
		return nil, 0, err
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matching := slice.Filter(repository.rows[entityType.Name], scope.Matches)

	start := min(page.Offset(), len(matching))
	end := min(start+page.Limit, len(matching))

	return matching[start:end], len(matching), nil
}
