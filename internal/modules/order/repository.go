package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order with its line snapshots.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order by id, or ErrNotFound.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// UpdateStatus sets a new status, or returns ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
