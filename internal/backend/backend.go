// Package backend picks where the admin data lives: Postgres when a
// database URL is configured, otherwise in-process maps seeded with the
// demo store.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/indikart/indikart-backend/internal/modules/catalog"
	"github.com/indikart/indikart-backend/internal/modules/customer"
	"github.com/indikart/indikart-backend/internal/modules/order"
	"github.com/indikart/indikart-backend/internal/modules/settings"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)

// Backend bundles one repository per module.
type Backend struct {
	Mode      string
	Products  catalog.Repository
	Orders    order.Repository
	Customers customer.Repository
	Settings  settings.Repository

	db *sql.DB
}

// SeedReport counts what Seed wrote.
type SeedReport struct {
	Products int
}

// Open connects to Postgres and applies the schema when databaseURL is set.
// With no URL it returns seeded in-memory repositories.
func Open(ctx context.Context, databaseURL string, logger *zap.Logger) (*Backend, error) {
	if databaseURL == "" {
		b := &Backend{
			Mode:      ModeMemory,
			Products:  catalog.NewMemoryRepository(),
			Orders:    order.NewMemoryRepository(),
			Customers: customer.NewMemoryRepository(),
			Settings:  settings.NewMemoryRepository(),
		}
		if _, err := b.Seed(ctx); err != nil {
			return nil, err
		}
		logger.Warn("DATABASE_URL not set, using in-memory demo data")
		return b, nil
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	logger.Info("connected to postgres")

	return &Backend{
		Mode:      ModePostgres,
		Products:  catalog.NewPostgresRepository(db),
		Orders:    order.NewPostgresRepository(db),
		Customers: customer.NewPostgresRepository(db),
		Settings:  settings.NewPostgresRepository(db),
		db:        db,
	}, nil
}

// Seed writes the demo catalog, customers and default settings. Records
// that already exist are kept as they are.
func (b *Backend) Seed(ctx context.Context) (SeedReport, error) {
	var report SeedReport
	n, err := catalog.Seed(ctx, b.Products)
	report.Products = n
	if err != nil {
		return report, fmt.Errorf("seed products: %w", err)
	}
	if err := customer.Seed(ctx, b.Customers); err != nil {
		return report, fmt.Errorf("seed customers: %w", err)
	}
	if err := b.Settings.Init(ctx, settings.Defaults()); err != nil {
		return report, fmt.Errorf("seed settings: %w", err)
	}
	return report, nil
}

func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
