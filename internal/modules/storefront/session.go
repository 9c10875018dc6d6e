package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/indikart/indikart-backend/internal/kv"
	"go.uber.org/zap"
)

// DefaultSessionIdleTTL is how long a session survives without requests.
const DefaultSessionIdleTTL = 30 * time.Minute

// Options tunes the timers of every session.
type Options struct {
	NotificationTTL      time.Duration
	CheckoutSuccessDelay time.Duration
	SearchDebounce       time.Duration
	SessionIdleTTL       time.Duration
}

// Session is the state of one shopper.
type Session struct {
	ID            string
	Notifications *Queue
	Cart          *Cart
	Wishlist      *Wishlist
	Browser       *Browser
	Checkout      *Checkout

	lastSeen time.Time // guarded by SessionManager.mu
}

func (s *Session) Close() {
	s.Checkout.Close()
	s.Browser.Close()
	s.Notifications.Close()
}

// SessionManager creates sessions on first use, evicts the ones that sit
// idle longer than SessionIdleTTL and tears the rest down on Close.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	catalog ProductSearcher
	orders  OrderCreator
	store   kv.Store
	opts    Options
	logger  *zap.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

func NewSessionManager(catalog ProductSearcher, orders OrderCreator, store kv.Store, opts Options, logger *zap.Logger) *SessionManager {
	if opts.SessionIdleTTL <= 0 {
		opts.SessionIdleTTL = DefaultSessionIdleTTL
	}
	m := &SessionManager{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		orders:   orders,
		store:    store,
		opts:     opts,
		logger:   logger,
		done:     make(chan struct{}),
	}
	m.wg.Add(1)
	go m.sweepLoop(sweepInterval(opts.SessionIdleTTL))
	return m
}

// Acquire returns the session for id, creating it if needed. An empty or
// malformed id gets a fresh one. The returned session is nil after Close.
func (m *SessionManager) Acquire(ctx context.Context, id string) *Session {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	if s, ok := m.lookup(id); ok {
		return s
	}

	// Loading the wishlist may hit the network; keep it out of the lock.
	s := m.newSession(ctx, id)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		s.Close()
		return nil
	}
	if existing, ok := m.sessions[id]; ok {
		existing.lastSeen = time.Now()
		m.mu.Unlock()
		s.Close()
		return existing
	}
	s.lastSeen = time.Now()
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.Debug("session created", zap.String("session_id", id))
	s.Browser.Refresh()
	return s
}

// Len reports the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the sweeper and closes every session.
func (m *SessionManager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.closed = true
	close(m.done)
	m.mu.Unlock()

	m.wg.Wait()
	for _, s := range sessions {
		s.Close()
	}
}

func (m *SessionManager) lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, true
	}
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

func (m *SessionManager) newSession(ctx context.Context, id string) *Session {
	logger := m.logger.With(zap.String("session_id", id))
	queue := NewQueue(m.opts.NotificationTTL)
	cart := NewCart(queue)
	return &Session{
		ID:            id,
		Notifications: queue,
		Cart:          cart,
		Wishlist:      NewWishlist(ctx, m.store, WishlistKey(id), queue, logger.Named("wishlist")),
		Browser:       NewBrowser(m.catalog, m.opts.SearchDebounce, logger.Named("browse")),
		Checkout:      NewCheckout(cart, m.orders, queue, m.opts.CheckoutSuccessDelay, logger.Named("checkout")),
	}
}

// ── eviction ──────────────────────────────────────────────────────────────────

func sweepInterval(ttl time.Duration) time.Duration {
	every := ttl / 2
	if every > time.Minute {
		every = time.Minute
	}
	if every <= 0 {
		every = time.Millisecond
	}
	return every
}

func (m *SessionManager) sweepLoop(every time.Duration) {
	defer m.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.sweep(now)
		}
	}
}

// sweep closes and forgets sessions idle since before now-SessionIdleTTL.
func (m *SessionManager) sweep(now time.Time) int {
	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) >= m.opts.SessionIdleTTL {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	live := len(m.sessions)
	m.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	if len(idle) > 0 {
		m.logger.Debug("evicted idle sessions", zap.Int("evicted", len(idle)), zap.Int("live", live))
	}
	return len(idle)
}
