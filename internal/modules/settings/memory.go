package settings

import (
	"context"
	"sync"
)

type memoryRepo struct {
	mu     sync.RWMutex
	value  StoreSettings
	exists bool
}

func NewMemoryRepository() Repository { return &memoryRepo{} }

func (r *memoryRepo) Get(_ context.Context) (StoreSettings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.exists, nil
}

func (r *memoryRepo) Update(_ context.Context, s StoreSettings) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.exists {
		return false, nil
	}
	r.value = s
	return true, nil
}

func (r *memoryRepo) Init(_ context.Context, s StoreSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.exists {
		r.value, r.exists = s, true
	}
	return nil
}
