package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the admin login endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, loginResponse{Message: "Missing credentials"})
		return
	}
	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		respond(w, http.StatusOK, loginResponse{OK: true, Message: "Login successful", Token: token})
	case errors.Is(err, ErrMissingCredentials):
		respond(w, http.StatusBadRequest, loginResponse{Message: "Missing credentials"})
	case errors.Is(err, ErrDisabled):
		respond(w, http.StatusServiceUnavailable, loginResponse{Message: "Admin login is not configured"})
	default:
		respond(w, http.StatusUnauthorized, loginResponse{Message: "Invalid credentials"})
	}
}

type ctxKey struct{}

// AdminFromContext returns the admin email stored by Middleware.
func AdminFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	return v, ok
}

// Middleware rejects requests without a valid "Authorization: Bearer" token.
func Middleware(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(raw, "Bearer ")
			if !found || token == "" {
				respond(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				return
			}
			admin, err := service.Verify(token)
			if err != nil {
				respond(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, admin)))
		})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
