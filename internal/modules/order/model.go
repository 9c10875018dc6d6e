package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidOrder = errors.New("invalid order")
)

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusShipped   Status = "Shipped"
	StatusCompleted Status = "Completed"
	StatusRefunded  Status = "Refunded"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusPaid, StatusShipped, StatusCompleted, StatusRefunded}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// GuestCustomer is recorded for storefront checkouts, which carry no identity.
const GuestCustomer = "Guest User"

// LineItem is a frozen copy of one cart line at the time of checkout.
type LineItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
}

// Submission is what the storefront sends when a shopper checks out.
type Submission struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Order is a placed order.
type Order struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Items        []LineItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UpdateStatusRequest is the payload for changing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
