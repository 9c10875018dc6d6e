package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	hash, err := HashPassword("chai-and-code", bcrypt.MinCost)
	require.NoError(t, err)
	svc, err := NewService(Admin{Email: "owner@indikart.in", PasswordHash: hash}, []byte("test-key"))
	require.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "owner@indikart.in", password: "chai-and-code"},
		{name: "email is case insensitive", email: "Owner@IndiKart.in", password: "chai-and-code"},
		{name: "missing password", email: "owner@indikart.in", wantErr: ErrMissingCredentials},
		{name: "missing email", password: "x", wantErr: ErrMissingCredentials},
		{name: "wrong password", email: "owner@indikart.in", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "wrong email", email: "admin@other.in", password: "chai-and-code", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			admin, err := svc.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, "owner@indikart.in", admin)
		})
	}
}

func TestVerifyRejectsExpiredAndForeignTokens(t *testing.T) {
	svc := newTestService(t)
	s := svc.(*service)

	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := svc.Login(context.Background(), "owner@indikart.in", "chai-and-code")
	require.NoError(t, err)
	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	other, err := NewService(s.admin, []byte("another-key"))
	require.NoError(t, err)
	foreign, err := other.Login(context.Background(), "owner@indikart.in", "chai-and-code")
	require.NoError(t, err)
	_, err = svc.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabled(t *testing.T) {
	svc, err := NewService(Admin{}, nil)
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestHandlerAndMiddleware(t *testing.T) {
	svc := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	r.With(Middleware(svc)).Get("/admin/ping", func(w http.ResponseWriter, r *http.Request) {
		admin, _ := AdminFromContext(r.Context())
		w.Write([]byte(admin))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"owner@indikart.in"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"owner@indikart.in","password":"bad"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"owner@indikart.in","password":"chai-and-code"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Login successful", resp.Message)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "owner@indikart.in", rec.Body.String())
}
