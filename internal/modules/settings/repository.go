package settings

import "context"

// Repository stores the single settings row.
type Repository interface {
	// Get returns the settings and whether a row exists.
	Get(ctx context.Context) (StoreSettings, bool, error)
	// Update overwrites the existing row and reports whether one existed.
	Update(ctx context.Context, s StoreSettings) (bool, error)
	// Init writes s only when no row exists yet.
	Init(ctx context.Context, s StoreSettings) error
}
