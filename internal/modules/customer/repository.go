package customer

import "context"

// Repository defines data access for customers.
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	// ListCustomers returns customers in the order they were created.
	ListCustomers(ctx context.Context) ([]*Customer, error)
	CountCustomers(ctx context.Context) (int, error)
}
