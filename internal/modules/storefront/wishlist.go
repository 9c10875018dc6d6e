package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/indikart/indikart-backend/internal/kv"
	"go.uber.org/zap"
)

// WishlistKeyPrefix is prepended to the session id to form the durable key.
const WishlistKeyPrefix = "indikart_wishlist"

// WishlistKey returns the durable key for a session's wishlist.
func WishlistKey(sessionID string) string {
	return WishlistKeyPrefix + ":" + sessionID
}

// Wishlist is a set of product ids mirrored to a key-value store on every
// change.
type Wishlist struct {
	mu       sync.Mutex
	ids      []string
	store    kv.Store
	key      string
	notifier Notifier
	logger   *zap.Logger
}

// NewWishlist reads key once. A missing or unreadable value starts an
// empty wishlist.
func NewWishlist(ctx context.Context, store kv.Store, key string, notifier Notifier, logger *zap.Logger) *Wishlist {
	w := &Wishlist{store: store, key: key, notifier: notifier, logger: logger}

	raw, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return w
	case err != nil:
		logger.Warn("wishlist load failed", zap.String("key", key), zap.Error(err))
		return w
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn("wishlist value malformed, starting empty", zap.String("key", key), zap.Error(err))
		return w
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		w.ids = append(w.ids, id)
	}
	return w
}

// Toggle adds or removes productID and persists the result. It reports
// whether the product is wishlisted afterwards.
func (w *Wishlist) Toggle(ctx context.Context, productID string) bool {
	w.mu.Lock()
	added := true
	if i := w.indexOf(productID); i >= 0 {
		w.ids = append(w.ids[:i], w.ids[i+1:]...)
		added = false
	} else {
		w.ids = append(w.ids, productID)
	}
	w.persist(ctx)
	w.mu.Unlock()

	if added {
		w.notifier.Push("Added to wishlist", SeveritySuccess)
	} else {
		w.notifier.Push("Removed from wishlist", SeverityInfo)
	}
	return added
}

func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indexOf(productID) >= 0
}

func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

// persist must be called with w.mu held so writes land in toggle order.
func (w *Wishlist) persist(ctx context.Context) {
	ids := w.ids
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err == nil {
		err = w.store.Set(ctx, w.key, string(data))
	}
	if err != nil {
		w.logger.Error("wishlist persist failed", zap.String("key", w.key), zap.Error(err))
	}
}

func (w *Wishlist) indexOf(productID string) int {
	for i, id := range w.ids {
		if id == productID {
			return i
		}
	}
	return -1
}
