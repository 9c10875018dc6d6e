package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the copywriting endpoints.
type Handler struct{ gen Generator }

func NewHandler(gen Generator) *Handler { return &Handler{gen: gen} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assistant", func(r chi.Router) {
		r.Post("/description", h.description) // POST /assistant/description
		r.Post("/email", h.email)             // POST /assistant/email
	})
}

type descriptionRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type emailRequest struct {
	CustomerName string `json:"customerName"`
	ProductName  string `json:"productName"`
}

func (h *Handler) description(w http.ResponseWriter, r *http.Request) {
	var req descriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	respond(w, http.StatusOK, map[string]string{"text": h.gen.ProductDescription(r.Context(), req.Name, req.Type)})
}

func (h *Handler) email(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.ProductName) == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "customerName and productName are required"})
		return
	}
	respond(w, http.StatusOK, map[string]string{"text": h.gen.MarketingEmail(r.Context(), req.CustomerName, req.ProductName)})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
