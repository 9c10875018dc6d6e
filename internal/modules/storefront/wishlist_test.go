package storefront

import (
	"context"
	"testing"

	"github.com/indikart/indikart-backend/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWishlistToggleWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	n := &recordingNotifier{}
	key := WishlistKey("s1")
	assert.Equal(t, "indikart_wishlist:s1", key)

	w := NewWishlist(ctx, store, key, n, zap.NewNop())
	assert.Empty(t, w.IDs())

	assert.True(t, w.Toggle(ctx, "p1"))
	assert.True(t, w.Toggle(ctx, "p8"))
	assert.Equal(t, pushed{"Added to wishlist", SeveritySuccess}, n.last())

	raw, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `["p1","p8"]`, raw)

	assert.False(t, w.Toggle(ctx, "p1"))
	assert.Equal(t, pushed{"Removed from wishlist", SeverityInfo}, n.last())
	assert.False(t, w.Contains("p1"))
	assert.True(t, w.Contains("p8"))

	assert.False(t, w.Toggle(ctx, "p8"))
	raw, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}

func TestWishlistReload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	w := NewWishlist(ctx, store, "k", &recordingNotifier{}, zap.NewNop())
	w.Toggle(ctx, "p3")
	w.Toggle(ctx, "p4")

	reloaded := NewWishlist(ctx, store, "k", &recordingNotifier{}, zap.NewNop())
	assert.Equal(t, []string{"p3", "p4"}, reloaded.IDs())
}

func TestWishlistLoadFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "not json", value: "p1,p2", want: []string{}},
		{name: "wrong shape", value: `{"ids":["p1"]}`, want: []string{}},
		{name: "duplicates dropped", value: `["p1","p2","p1",""]`, want: []string{"p1", "p2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := kv.NewMemoryStore()
			require.NoError(t, store.Set(ctx, "k", tt.value))

			w := NewWishlist(ctx, store, "k", &recordingNotifier{}, zap.NewNop())
			assert.Equal(t, tt.want, w.IDs())
		})
	}
}

func TestWishlistStoreFailureIsLoggedOnly(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	n := &recordingNotifier{}

	w := NewWishlist(ctx, failingStore{}, "k", n, zap.New(core))
	assert.Equal(t, 1, logs.FilterMessage("wishlist load failed").Len())

	assert.True(t, w.Toggle(ctx, "p2"))
	assert.True(t, w.Contains("p2"))
	assert.Equal(t, pushed{"Added to wishlist", SeveritySuccess}, n.last())
	assert.Equal(t, 1, logs.FilterMessage("wishlist persist failed").Len())
}
