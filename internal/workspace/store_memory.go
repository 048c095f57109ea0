// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workspace

import (
	"context"
	"maps"
	"sync"

	"github.com/taibuivan/panelkit/pkg/slice"
)

// MemoryRepository implements Repository in process memory.
type MemoryRepository struct {
	mu        sync.Mutex
	instances map[string]memoryInstance
}

type memoryInstance struct {
	tabs    []Descriptor
	version int64
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{instances: make(map[string]memoryInstance)}
}

func (repository *MemoryRepository) Load(_ context.Context, instance string) ([]Descriptor, int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := repository.instances[instance]
	return copyTabs(stored.tabs), stored.version, nil
}

func (repository *MemoryRepository) Save(_ context.Context, instance string, tabs []Descriptor, expectedVersion int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := repository.instances[instance]
	if stored.version != expectedVersion {
		return ErrStaleTabs
	}

	repository.instances[instance] = memoryInstance{tabs: copyTabs(tabs), version: stored.version + 1}
	return nil
}

// copyTabs isolates stored descriptors from caller mutation.
func copyTabs(tabs []Descriptor) []Descriptor {
	return slice.Map(tabs, func(tab Descriptor) Descriptor {
		tab.Config = maps.Clone(tab.Config)
		return tab
	})
}
