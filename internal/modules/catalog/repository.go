package catalog

import "context"

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q Query) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
