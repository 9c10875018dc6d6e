package settings

import (
	"context"
	"fmt"
	"strings"
)

// Service reads and edits store settings.
type Service interface {
	// GetSettings returns zero settings when none have been stored.
	GetSettings(ctx context.Context) (StoreSettings, error)
	// UpdateSettings fails with ErrNotConfigured when there is no row to update.
	UpdateSettings(ctx context.Context, s StoreSettings) (StoreSettings, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetSettings(ctx context.Context) (StoreSettings, error) {
	v, _, err := s.repo.Get(ctx)
	return v, err
}

func (s *service) UpdateSettings(ctx context.Context, in StoreSettings) (StoreSettings, error) {
	in.StoreName = strings.TrimSpace(in.StoreName)
	in.Email = strings.TrimSpace(in.Email)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	in.TaxRate = strings.TrimSpace(in.TaxRate)
	ok, err := s.repo.Update(ctx, in)
	if err != nil {
		return StoreSettings{}, fmt.Errorf("update settings: %w", err)
	}
	if !ok {
		return StoreSettings{}, ErrNotConfigured
	}
	return in, nil
}
