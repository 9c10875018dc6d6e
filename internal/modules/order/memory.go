package order

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders map[string]*Order
	seq    map[string]int
	next   int
	now    func() time.Time
}

// NewMemoryRepository returns an order Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		orders: make(map[string]*Order),
		seq:    make(map[string]int),
		now:    time.Now,
	}
}

func clone(o *Order) *Order {
	cp := *o
	cp.Items = append([]LineItem(nil), o.Items...)
	return &cp
}

func (r *memoryRepo) CreateOrder(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return fmt.Errorf("%w: duplicate id %s", ErrInvalidOrder, o.ID)
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = r.now().UTC()
	}
	o.UpdatedAt = o.CreatedAt
	r.orders[o.ID] = clone(o)
	r.next++
	r.seq[o.ID] = r.next
	return nil
}

func (r *memoryRepo) GetOrderByID(_ context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return clone(o), nil
}

// ListOrders sorts by creation time, newest first, breaking ties by insertion.
func (r *memoryRepo) ListOrders(_ context.Context) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, clone(o))
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return r.seq[orders[i].ID] > r.seq[orders[j].ID]
	})
	return orders, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	o.Status = status
	o.UpdatedAt = r.now().UTC()
	return nil
}
