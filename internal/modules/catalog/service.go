package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	// ListProducts returns products matching q. No match is an empty slice, not an error.
	ListProducts(ctx context.Context, q Query) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductRequest holds the admin-editable fields of a product.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Type        ProductType     `json:"type"`
	Image       string          `json:"image"`
	SKU         string          `json:"sku"`
}

func (req *ProductRequest) normalize() error {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.SKU = strings.TrimSpace(req.SKU)
	if req.Type == "" {
		req.Type = TypePhysical
	}
	switch {
	case req.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case req.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	case req.Stock < 0:
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	case !req.Type.Valid():
		return fmt.Errorf("%w: unknown type %q", ErrInvalidProduct, req.Type)
	}
	return nil
}

func (req ProductRequest) apply(p *Product) {
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.Stock = req.Stock
	p.Type = req.Type
	p.Image = req.Image
	p.SKU = req.SKU
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	p := &Product{ID: uuid.NewString()}
	req.apply(p)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, q Query) ([]*Product, error) {
	return s.repo.List(ctx, q)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
