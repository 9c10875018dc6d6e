package storefront

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 3000 * time.Millisecond

// Notification is a transient message shown to the shopper.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier is the push side of the queue, used by the cart, wishlist and
// checkout.
type Notifier interface {
	Push(message string, severity Severity) string
}

// Queue holds notifications that expire on their own after a fixed TTL.
type Queue struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []Notification
	timers  map[string]*time.Timer
	closed  bool
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Queue{ttl: ttl, timers: make(map[string]*time.Timer)}
}

// Push appends a notification and schedules its removal. Identical
// messages are kept as separate entries.
func (q *Queue) Push(message string, severity Severity) string {
	now := time.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return n.ID
	}
	q.entries = append(q.entries, n)
	q.timers[n.ID] = time.AfterFunc(q.ttl, func() { q.remove(n.ID) })
	return n.ID
}

// Dismiss removes a notification before it expires. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.remove(id)
}

// Entries returns the live notifications oldest first.
func (q *Queue) Entries() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// Close cancels every pending expiry and drops all entries.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.entries = nil
	q.closed = true
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}
