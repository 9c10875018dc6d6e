package customer

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateCustomer(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, avatar, total_spent, last_order_date, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at
	`
	var last sql.NullTime
	if c.LastOrderDate != nil {
		last = sql.NullTime{Time: *c.LastOrderDate, Valid: true}
	}
	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Avatar, c.TotalSpent, last, pq.Array(c.Tags),
	).Scan(&c.CreatedAt)
	if err == sql.ErrNoRows {
		// already present
		return nil
	}
	return err
}

func (r *postgresRepository) ListCustomers(ctx context.Context) ([]*Customer, error) {
	query := `
		SELECT id, name, email, phone, avatar, total_spent, last_order_date, tags, created_at
		FROM customers
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []*Customer{}
	for rows.Next() {
		c := &Customer{}
		var last sql.NullTime
		var tags pq.StringArray
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.Avatar,
			&c.TotalSpent,
			&last,
			&tags,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		if last.Valid {
			t := last.Time
			c.LastOrderDate = &t
		}
		c.Tags = []string(tags)
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepository) CountCustomers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}
