package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/indikart/indikart-backend/internal/modules/catalog"
	"github.com/indikart/indikart-backend/internal/modules/order"
	"github.com/shopspring/decimal"
)

// HeaderSessionID carries the shopper session between requests.
const HeaderSessionID = "X-Session-ID"

// ProductCatalog is the read side of the catalog used by the storefront.
type ProductCatalog interface {
	ProductSearcher
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// Handler exposes storefront HTTP endpoints.
type Handler struct {
	sessions *SessionManager
	catalog  ProductCatalog
}

func NewHandler(sessions *SessionManager, catalog ProductCatalog) *Handler {
	return &Handler{sessions: sessions, catalog: catalog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)    // GET    /products?q=&category=
	r.Get("/products/{id}", h.getProduct) // GET    /products/{id}

	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Put("/browse", h.setBrowse) // PUT    /browse
		r.Get("/browse", h.getBrowse) // GET    /browse

		r.Get("/cart", h.getCart)                      // GET    /cart
		r.Post("/cart/items", h.addCartItem)           // POST   /cart/items
		r.Patch("/cart/items/{id}", h.updateCartItem)  // PATCH  /cart/items/{id}
		r.Delete("/cart/items/{id}", h.removeCartItem) // DELETE /cart/items/{id}
		r.Delete("/cart", h.clearCart)                 // DELETE /cart

		r.Post("/checkout", h.submitCheckout) // POST   /checkout
		r.Get("/checkout", h.getCheckout)     // GET    /checkout

		r.Get("/wishlist", h.getWishlist)                  // GET    /wishlist
		r.Get("/wishlist/products", h.getWishlistProducts) // GET    /wishlist/products
		r.Post("/wishlist/{id}", h.toggleWishlist)         // POST   /wishlist/{id}

		r.Get("/notifications", h.listNotifications)           // GET    /notifications
		r.Delete("/notifications/{id}", h.dismissNotification) // DELETE /notifications/{id}
	})
}

type sessionKey struct{}

func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := h.sessions.Acquire(r.Context(), r.Header.Get(HeaderSessionID))
		if s == nil {
			respond(w, http.StatusServiceUnavailable, map[string]string{"error": "storefront is shutting down"})
			return
		}
		w.Header().Set(HeaderSessionID, s.ID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, s)))
	})
}

func session(r *http.Request) *Session {
	return r.Context().Value(sessionKey{}).(*Session)
}

// ── catalog ───────────────────────────────────────────────────────────────────

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{Search: r.URL.Query().Get("q"), Category: r.URL.Query().Get("category")}
	products, err := h.catalog.ListProducts(r.Context(), q)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondProductError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

// ── browse ────────────────────────────────────────────────────────────────────

type browseRequest struct {
	Query    *string `json:"query"`
	Category *string `json:"category"`
}

func (h *Handler) setBrowse(w http.ResponseWriter, r *http.Request) {
	var req browseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	b := session(r).Browser
	if req.Query != nil {
		b.SetQuery(*req.Query)
	}
	if req.Category != nil {
		b.SetCategory(*req.Category)
	}
	respond(w, http.StatusAccepted, b.State())
}

func (h *Handler) getBrowse(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, session(r).Browser.State())
}

// ── cart ──────────────────────────────────────────────────────────────────────

type cartResponse struct {
	Items []CartItem      `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Open  bool            `json:"open"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

type updateItemRequest struct {
	Delta int `json:"delta"`
}

func cartView(c *Cart) cartResponse {
	return cartResponse{Items: c.Items(), Count: c.Count(), Total: c.Total(), Open: c.IsOpen()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, cartView(session(r).Cart))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}
	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		respondProductError(w, err)
		return
	}
	cart := session(r).Cart
	cart.AddItem(*p)
	respond(w, http.StatusOK, cartView(cart))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	cart := session(r).Cart
	cart.UpdateQuantity(chi.URLParam(r, "id"), req.Delta)
	respond(w, http.StatusOK, cartView(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart := session(r).Cart
	cart.RemoveItem(chi.URLParam(r, "id"))
	respond(w, http.StatusOK, cartView(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart := session(r).Cart
	cart.Clear()
	respond(w, http.StatusOK, cartView(cart))
}

// ── checkout ──────────────────────────────────────────────────────────────────

type checkoutResponse struct {
	Outcome Outcome       `json:"outcome,omitempty"`
	State   CheckoutState `json:"state"`
	Order   *order.Order  `json:"order,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) submitCheckout(w http.ResponseWriter, r *http.Request) {
	co := session(r).Checkout
	outcome, placed := co.Submit(r.Context())
	resp := checkoutResponse{Outcome: outcome, State: co.State(), Order: placed}
	switch outcome {
	case OutcomeSucceeded:
		respond(w, http.StatusCreated, resp)
	case OutcomeFailed:
		resp.Error = MsgOrderFailed
		respond(w, http.StatusBadGateway, resp)
	default:
		respond(w, http.StatusConflict, resp)
	}
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, checkoutResponse{State: session(r).Checkout.State()})
}

// ── wishlist ──────────────────────────────────────────────────────────────────

type toggleResponse struct {
	ProductID  string `json:"productId"`
	Wishlisted bool   `json:"wishlisted"`
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, session(r).Wishlist.IDs())
}

func (h *Handler) getWishlistProducts(w http.ResponseWriter, r *http.Request) {
	wl := session(r).Wishlist
	all, err := h.catalog.ListProducts(r.Context(), catalog.Query{})
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	out := make([]*catalog.Product, 0)
	for _, p := range all {
		if wl.Contains(p.ID) {
			out = append(out, p)
		}
	}
	respond(w, http.StatusOK, out)
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	added := session(r).Wishlist.Toggle(r.Context(), id)
	respond(w, http.StatusOK, toggleResponse{ProductID: id, Wishlisted: added})
}

// ── notifications ─────────────────────────────────────────────────────────────

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, session(r).Notifications.Entries())
}

func (h *Handler) dismissNotification(w http.ResponseWriter, r *http.Request) {
	session(r).Notifications.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func respondProductError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
