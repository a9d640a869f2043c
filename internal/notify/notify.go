// Package notify holds the transient toast queue shown by the presentation layer.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind classifies a notification
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// DefaultTTL is how long a notification stays visible
const DefaultTTL = 4 * time.Second

// Notification is a single toast
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Queue is a TTL-bounded notification list, safe for concurrent use
type Queue struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
	now   func() time.Time
	log   zerolog.Logger

	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Option configures a Queue
type Option func(*Queue)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// NewQueue creates a queue whose notifications expire after ttl
func NewQueue(ttl time.Duration, log zerolog.Logger, opts ...Option) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	q := &Queue{
		ttl: ttl,
		now: time.Now,
		log: log.With().Str("service", "notify").Logger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a notification and returns it
func (q *Queue) Push(kind Kind, message string) Notification {
	now := q.now()
	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	}

	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()

	q.log.Debug().Str("id", n.ID).Str("kind", string(kind)).Msg(message)
	return n
}

// Remove dismisses a notification. It reports whether the id was present.
func (q *Queue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the live notifications, oldest first
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneLocked()
	return append([]Notification{}, q.items...)
}

// Prune drops expired notifications and returns how many were removed
func (q *Queue) Prune() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pruneLocked()
}

func (q *Queue) pruneLocked() int {
	now := q.now()
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	removed := len(q.items) - len(kept)
	clear(q.items[len(kept):])
	q.items = kept
	return removed
}

// StartJanitor prunes expired notifications every interval until ctx is done or StopJanitor is called.
// It returns immediately; calling it on a running janitor does nothing.
func (q *Queue) StartJanitor(ctx context.Context, interval time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	if interval <= 0 {
		interval = time.Second
	}

	ctx, q.cancel = context.WithCancel(ctx)
	q.done = make(chan struct{})
	q.running = true

	go q.sweep(ctx, interval, q.done)
	q.log.Info().Dur("interval", interval).Msg("Notification janitor started")
}

func (q *Queue) sweep(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := q.Prune(); n > 0 {
				q.log.Debug().Int("expired", n).Msg("Pruned notifications")
			}
		}
	}
}

// StopJanitor stops the janitor and waits for it to exit
func (q *Queue) StopJanitor() {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.cancel()
	done := q.done
	q.running = false
	q.mu.Unlock()

	<-done
	q.log.Info().Msg("Notification janitor stopped")
}
