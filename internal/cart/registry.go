package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultIdleTTL     = 24 * time.Hour
	DefaultMaxSessions = 10000

	sweepInterval = time.Minute
)

type Option func(r *Registry)

// WithIdleTTL forgets carts not touched for ttl. Zero keeps them forever.
func WithIdleTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.ttl = ttl
	}
}

// WithMaxSessions caps the number of live carts; the least recently used cart
// is evicted to make room. Zero means no cap.
func WithMaxSessions(n int) Option {
	return func(r *Registry) {
		r.maxSessions = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

type entry struct {
	cart     *Cart
	lastUsed time.Time
}

// Registry maps session ids to carts. A cart exists only once something has
// been put in it.
type Registry struct {
	mu          sync.Mutex
	carts       map[string]*entry
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
	nextSweep   time.Time
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		carts:       make(map[string]*entry),
		ttl:         DefaultIdleTTL,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewSessionID() string {
	return uuid.NewString()
}

// With runs fn against the session's cart, creating an empty cart on first
// use. fn must not retain the cart.
func (r *Registry) With(sessionID string, fn func(c *Cart) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.live(sessionID, now)
	if !ok {
		r.makeRoom(now)
		e = &entry{cart: New()}
		r.carts[sessionID] = e
	}
	e.lastUsed = now

	return fn(e.cart)
}

// Existing runs fn against the session's cart without registering one. An
// unknown or expired session sees an empty cart that is thrown away.
func (r *Registry) Existing(sessionID string, fn func(c *Cart) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.live(sessionID, now)
	if !ok {
		return fn(New())
	}
	e.lastUsed = now

	return fn(e.cart)
}

// Drop forgets the session's cart entirely.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

func (r *Registry) Sessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// Sweep removes every cart idle for longer than the TTL and reports how many
// were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweep(r.now())
}

func (r *Registry) live(sessionID string, now time.Time) (*entry, bool) {
	e, ok := r.carts[sessionID]
	if !ok {
		return nil, false
	}
	if r.expired(e, now) {
		delete(r.carts, sessionID)
		return nil, false
	}
	return e, true
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastUsed) > r.ttl
}

func (r *Registry) sweep(now time.Time) int {
	removed := 0
	for id, e := range r.carts {
		if r.expired(e, now) {
			delete(r.carts, id)
			removed++
		}
	}
	r.nextSweep = now.Add(sweepInterval)
	return removed
}

// makeRoom runs before a new cart is registered. Caller holds mu.
func (r *Registry) makeRoom(now time.Time) {
	if !now.Before(r.nextSweep) || (r.maxSessions > 0 && len(r.carts) >= r.maxSessions) {
		r.sweep(now)
	}

	for r.maxSessions > 0 && len(r.carts) >= r.maxSessions {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, e := range r.carts {
			if oldestID == "" || e.lastUsed.Before(oldest) {
				oldestID, oldest = id, e.lastUsed
			}
		}
		delete(r.carts, oldestID)
	}
}
