package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, Seed(ctx, repo))
	require.NoError(t, Seed(ctx, repo), "seeding twice keeps one copy")

	n, err := repo.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	customers, err := NewService(repo).ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Priya Sharma", customers[0].Name)
	assert.Equal(t, []string{"Premium", "Bangalore"}, customers[0].Tags)
	assert.Equal(t, "2023-10-15", customers[0].LastOrderDate.Format("2006-01-02"))
}

func TestHandlerListCustomers(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, Seed(context.Background(), repo))

	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, "45000", got[2]["totalSpent"])
}
