package customer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// DemoCustomers is the starter customer list loaded into empty stores.
func DemoCustomers() []*Customer {
	day := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}
	return []*Customer{
		{ID: "c1", Name: "Priya Sharma", Email: "priya.s@example.com", Phone: "+91 98765 43210",
			TotalSpent: decimal.RequireFromString("15498.00"), Tags: []string{"Premium", "Bangalore"}, LastOrderDate: day("2023-10-15"),
			Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=100&q=80"},
		{ID: "c2", Name: "Rahul Verma", Email: "rahul.v@example.com", Phone: "+91 99887 76655",
			TotalSpent: decimal.RequireFromString("1999.00"), Tags: []string{"New", "Mumbai"}, LastOrderDate: day("2023-10-20"),
			Avatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=100&q=80"},
		{ID: "c3", Name: "Amit Patel", Email: "amit.p@example.com", Phone: "+91 91234 56789",
			TotalSpent: decimal.RequireFromString("45000.00"), Tags: []string{"Wholesale", "Ahmedabad"}, LastOrderDate: day("2023-09-01"),
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=100&q=80"},
	}
}

// Seed inserts the demo customers; existing ids are left alone.
func Seed(ctx context.Context, repo Repository) error {
	for _, c := range DemoCustomers() {
		if err := repo.CreateCustomer(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
