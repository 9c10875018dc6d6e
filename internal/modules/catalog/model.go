package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when no product has the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidProduct wraps every validation failure.
	ErrInvalidProduct = errors.New("invalid product")
)

// ProductType classifies how a product is fulfilled.
type ProductType string

const (
	TypePhysical ProductType = "Physical"
	TypeDigital  ProductType = "Digital"
	TypeService  ProductType = "Service"
)

// Valid reports whether t is one of the known product types.
func (t ProductType) Valid() bool {
	switch t {
	case TypePhysical, TypeDigital, TypeService:
		return true
	}
	return false
}

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// Product is a sellable item in the store catalog.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Type        ProductType     `json:"type"`
	SKU         string          `json:"sku,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Query narrows a product listing. The zero value lists everything.
type Query struct {
	Search   string `json:"query"`
	Category string `json:"category"`
}

// CategoryFilter returns the category to filter on, or "" for none.
func (q Query) CategoryFilter() string {
	c := strings.TrimSpace(q.Category)
	if c == AllCategories {
		return ""
	}
	return c
}

// SearchTerm returns the trimmed free-text term.
func (q Query) SearchTerm() string {
	return strings.TrimSpace(q.Search)
}

// Matches applies the query to a single product: exact category, and a
// case-insensitive substring match on the name.
func (q Query) Matches(p *Product) bool {
	if c := q.CategoryFilter(); c != "" && p.Category != c {
		return false
	}
	if s := q.SearchTerm(); s != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(s)) {
		return false
	}
	return true
}
