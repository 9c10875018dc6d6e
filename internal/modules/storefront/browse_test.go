package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/indikart/indikart-backend/internal/modules/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearcher struct {
	mu      sync.Mutex
	queries []catalog.Query
	fn      func(q catalog.Query) ([]*catalog.Product, error)
}

func (f *fakeSearcher) ListProducts(_ context.Context, q catalog.Query) ([]*catalog.Product, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	fn := f.fn
	f.mu.Unlock()
	return fn(q)
}

func (f *fakeSearcher) seen() []catalog.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalog.Query(nil), f.queries...)
}

func filterDemo(q catalog.Query) ([]*catalog.Product, error) {
	out := []*catalog.Product{}
	for _, p := range catalog.DemoProducts() {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func ids(products []*catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestBrowserDebouncesInput(t *testing.T) {
	s := &fakeSearcher{fn: filterDemo}
	b := NewBrowser(s, 20*time.Millisecond, zap.NewNop())
	defer b.Close()

	st := b.State()
	assert.Equal(t, catalog.AllCategories, st.Category)
	assert.Empty(t, st.Products)

	b.SetQuery("l")
	b.SetQuery("lo")
	b.SetQuery("logi")
	b.SetCategory("Electronics")
	assert.True(t, b.State().Loading)

	require.Eventually(t, func() bool { return !b.State().Loading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []catalog.Query{{Search: "logi", Category: "Electronics"}}, s.seen())
	assert.Equal(t, []string{"p5"}, ids(b.State().Products))

	b.SetCategory("")
	require.Eventually(t, func() bool { return len(s.seen()) == 2 && !b.State().Loading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, catalog.AllCategories, b.State().Category)
}

func TestBrowserUnchangedInputIsNoop(t *testing.T) {
	s := &fakeSearcher{fn: filterDemo}
	b := NewBrowser(s, 5*time.Millisecond, zap.NewNop())
	defer b.Close()

	b.SetQuery("")
	b.SetCategory(catalog.AllCategories)
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, s.seen())
	assert.False(t, b.State().Loading)
}

func TestBrowserLastRequestWins(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	s := &fakeSearcher{fn: func(q catalog.Query) ([]*catalog.Product, error) {
		if q.Search == "chair" {
			entered <- struct{}{}
			<-release
			return []*catalog.Product{{ID: "stale"}}, nil
		}
		return filterDemo(q)
	}}
	b := NewBrowser(s, 5*time.Millisecond, zap.NewNop())

	b.SetQuery("chair")
	<-entered
	b.SetQuery("rockerz")
	require.Eventually(t, func() bool { return !b.State().Loading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"p2"}, ids(b.State().Products))

	close(release)
	b.Close()
	assert.Equal(t, []string{"p2"}, ids(b.State().Products))
}

func TestBrowserKeepsResultsOnError(t *testing.T) {
	var fail bool
	var mu sync.Mutex
	s := &fakeSearcher{fn: func(q catalog.Query) ([]*catalog.Product, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return nil, errors.New("catalog unavailable")
		}
		return filterDemo(q)
	}}
	b := NewBrowser(s, 5*time.Millisecond, zap.NewNop())
	defer b.Close()

	b.SetCategory("Home")
	require.Eventually(t, func() bool { return !b.State().Loading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"p1", "p6"}, ids(b.State().Products))

	mu.Lock()
	fail = true
	mu.Unlock()
	b.SetQuery("jaipur")
	require.Eventually(t, func() bool { return len(s.seen()) == 2 && !b.State().Loading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"p1", "p6"}, ids(b.State().Products))
}

func TestBrowserDropsInFlightResultAfterNewInput(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	s := &fakeSearcher{fn: func(q catalog.Query) ([]*catalog.Product, error) {
		if q.Search == "chair" {
			entered <- struct{}{}
			<-release
			return []*catalog.Product{{ID: "stale"}}, nil
		}
		return filterDemo(q)
	}}
	b := NewBrowser(s, 50*time.Millisecond, zap.NewNop())

	b.SetQuery("chair")
	<-entered

	// New input is typed but its search has not been sent yet.
	b.SetQuery("desk")
	close(release)
	b.Close()

	st := b.State()
	assert.Equal(t, "desk", st.Query)
	assert.NotContains(t, ids(st.Products), "stale")
	if len(s.seen()) == 1 {
		assert.True(t, st.Loading, "the pending search still owns the listing")
	}
}
