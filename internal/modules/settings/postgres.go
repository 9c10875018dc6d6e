package settings

import (
	"context"
	"database/sql"
	"errors"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Get(ctx context.Context) (StoreSettings, bool, error) {
	var s StoreSettings
	err := r.db.QueryRowContext(ctx, `
		SELECT store_name, email, currency, tax_rate, notifications
		FROM settings ORDER BY id LIMIT 1`,
	).Scan(&s.StoreName, &s.Email, &s.Currency, &s.TaxRate, &s.Notifications)
	if errors.Is(err, sql.ErrNoRows) {
		return StoreSettings{}, false, nil
	}
	if err != nil {
		return StoreSettings{}, false, err
	}
	return s, true, nil
}

func (r *postgresRepo) Update(ctx context.Context, s StoreSettings) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE settings
		SET store_name=$1, email=$2, currency=$3, tax_rate=$4, notifications=$5
		WHERE id = (SELECT id FROM settings ORDER BY id LIMIT 1)`,
		s.StoreName, s.Email, s.Currency, s.TaxRate, s.Notifications)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *postgresRepo) Init(ctx context.Context, s StoreSettings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (store_name, email, currency, tax_rate, notifications)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (SELECT 1 FROM settings)`,
		s.StoreName, s.Email, s.Currency, s.TaxRate, s.Notifications)
	return err
}
