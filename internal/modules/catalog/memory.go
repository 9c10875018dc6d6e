package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*Product
	now   func() time.Time
}

// NewMemoryRepository returns a Repository kept in process memory, listing
// products in insertion order.
func NewMemoryRepository() Repository {
	return &memoryRepo{byID: make(map[string]*Product), now: time.Now}
}

func (r *memoryRepo) Create(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return fmt.Errorf("%w: duplicate id %s", ErrInvalidProduct, p.ID)
	}
	now := r.now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	r.byID[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepo) List(_ context.Context, q Query) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := []*Product{}
	for _, id := range r.order {
		p := r.byID[id]
		if q.Matches(p) {
			cp := *p
			products = append(products, &cp)
		}
	}
	return products, nil
}

func (r *memoryRepo) Update(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.byID[p.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = r.now().UTC()
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
