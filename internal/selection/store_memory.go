// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package selection

import (
	"context"
	"sync"
)

// MemoryRepository implements Repository in process memory. Entries live
// until the process exits; it backs the sqlite and memory state backends.
type MemoryRepository struct {
	mu     sync.Mutex
	states map[Key]State
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{states: make(map[Key]State)}
}

func (repository *MemoryRepository) Get(_ context.Context, key Key) (State, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return repository.states[key], nil
}

func (repository *MemoryRepository) Set(_ context.Context, key Key, state State) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.states[key] = state
	return nil
}
