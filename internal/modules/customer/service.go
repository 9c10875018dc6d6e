package customer

import "context"

// Service defines the interface for customer-related business logic.
type Service interface {
	ListCustomers(ctx context.Context) ([]*Customer, error)
}
