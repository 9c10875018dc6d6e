package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsBeforeInit(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, StoreSettings{}, got)

	_, err = svc.UpdateSettings(ctx, Defaults())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUpdateSettings(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx, Defaults()))
	require.NoError(t, repo.Init(ctx, StoreSettings{StoreName: "ignored"}), "init never overwrites")

	svc := NewService(repo)
	updated, err := svc.UpdateSettings(ctx, StoreSettings{StoreName: " IndiKart Pro ", Currency: "inr", TaxRate: "12"})
	require.NoError(t, err)
	assert.Equal(t, "IndiKart Pro", updated.StoreName)
	assert.Equal(t, "INR", updated.Currency)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestHandlerUpdateWithoutRow(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(NewService(NewMemoryRepository())).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"storeName":"x"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
