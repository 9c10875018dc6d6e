package customer

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu        sync.RWMutex
	customers []*Customer
	ids       map[string]struct{}
}

// NewMemoryRepository creates a customer repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{ids: make(map[string]struct{})}
}

func (r *memoryRepository) CreateCustomer(_ context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[c.ID]; ok {
		return nil
	}
	c.CreatedAt = time.Now().UTC()
	cp := *c
	cp.Tags = append([]string(nil), c.Tags...)
	r.customers = append(r.customers, &cp)
	r.ids[c.ID] = struct{}{}
	return nil
}

func (r *memoryRepository) ListCustomers(_ context.Context) ([]*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Customer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		cp.Tags = append([]string(nil), c.Tags...)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepository) CountCustomers(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers), nil
}
