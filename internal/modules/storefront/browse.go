package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/indikart/indikart-backend/internal/modules/catalog"
	"go.uber.org/zap"
)

// ProductSearcher is the catalog lookup used for filtering.
type ProductSearcher interface {
	ListProducts(ctx context.Context, q catalog.Query) ([]*catalog.Product, error)
}

// BrowseState is a snapshot of the filter inputs and the current results.
type BrowseState struct {
	Query    string             `json:"query"`
	Category string             `json:"category"`
	Products []*catalog.Product `json:"products"`
	Loading  bool               `json:"loading"`
}

// Browser keeps the product listing in step with the search box and the
// category chip. Searches are debounced; when responses overlap only the
// newest request is applied.
type Browser struct {
	mu       sync.Mutex
	query    string
	category string
	products []*catalog.Product
	loading  bool
	seq      uint64
	closed   bool

	searcher  ProductSearcher
	debouncer *Debouncer
	logger    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewBrowser(searcher ProductSearcher, wait time.Duration, logger *zap.Logger) *Browser {
	ctx, cancel := context.WithCancel(context.Background())
	return &Browser{
		category:  catalog.AllCategories,
		products:  []*catalog.Product{},
		searcher:  searcher,
		debouncer: NewDebouncer(wait),
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SetQuery changes the free-text filter. An unchanged value is a no-op.
func (b *Browser) SetQuery(q string) {
	b.mu.Lock()
	if q == b.query {
		b.mu.Unlock()
		return
	}
	b.query = q
	b.mu.Unlock()
	b.Refresh()
}

// SetCategory changes the category filter; "" resets it to All.
func (b *Browser) SetCategory(category string) {
	if category == "" {
		category = catalog.AllCategories
	}
	b.mu.Lock()
	if category == b.category {
		b.mu.Unlock()
		return
	}
	b.category = category
	b.mu.Unlock()
	b.Refresh()
}

// Refresh schedules a search with the current filters. Results of any
// search issued earlier are discarded from this point on.
func (b *Browser) Refresh() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.seq++
	seq := b.seq
	b.loading = true
	b.mu.Unlock()
	b.debouncer.Trigger(func() { b.search(seq) })
}

func (b *Browser) State() BrowseState {
	b.mu.Lock()
	defer b.mu.Unlock()
	products := make([]*catalog.Product, len(b.products))
	copy(products, b.products)
	return BrowseState{
		Query:    b.query,
		Category: b.category,
		Products: products,
		Loading:  b.loading,
	}
}

// Close cancels pending and in-flight searches and waits for them to return.
func (b *Browser) Close() {
	b.debouncer.Stop()
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.cancel()
	b.wg.Wait()
}

func (b *Browser) search(seq uint64) {
	b.mu.Lock()
	if b.closed || seq != b.seq {
		b.mu.Unlock()
		return
	}
	q := catalog.Query{Search: b.query, Category: b.category}
	b.wg.Add(1)
	b.mu.Unlock()
	defer b.wg.Done()

	products, err := b.searcher.ListProducts(b.ctx, q)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		b.logger.Debug("discarding stale search result", zap.Uint64("seq", seq), zap.Uint64("latest", b.seq))
		return
	}
	b.loading = false
	if err != nil {
		if b.ctx.Err() == nil {
			b.logger.Error("catalog search failed",
				zap.String("query", q.Search),
				zap.String("category", q.Category),
				zap.Error(err))
		}
		return
	}
	if products == nil {
		products = []*catalog.Product{}
	}
	b.products = products
}
