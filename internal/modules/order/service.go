package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines the order management business logic.
type Service interface {
	// CreateOrder records a storefront checkout as a Pending guest order.
	CreateOrder(ctx context.Context, sub Submission) (*Order, error)

	// GetOrder retrieves an order by id.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// UpdateStatus moves an order to any known status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateOrder(ctx context.Context, sub Submission) (*Order, error) {
	if len(sub.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrder)
	}
	for _, item := range sub.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: productId is required", ErrInvalidOrder)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for product %s", ErrInvalidOrder, item.ProductID)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative for product %s", ErrInvalidOrder, item.ProductID)
		}
	}
	if sub.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total must not be negative", ErrInvalidOrder)
	}

	o := &Order{
		ID:           uuid.NewString(),
		OrderNumber:  generateOrderNumber(),
		CustomerName: GuestCustomer,
		Items:        append([]LineItem(nil), sub.Items...),
		Total:        sub.Total.Round(2),
		Status:       StatusPending,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	status := normalizeStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, req.Status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, id)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// normalizeStatus accepts any casing, e.g. "shipped" or "SHIPPED".
func normalizeStatus(raw string) Status {
	raw = strings.TrimSpace(raw)
	for _, s := range Statuses {
		if strings.EqualFold(string(s), raw) {
			return s
		}
	}
	return Status(raw)
}

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
