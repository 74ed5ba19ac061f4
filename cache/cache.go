// Package cache provides TTL response caching keyed by resolved request
// descriptors, with pluggable storage backends.
package cache

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Entry is one stored payload. Entries are immutable once stored;
// updates always replace the whole entry.
type Entry struct {
	Payload  []byte        `json:"payload"`
	StoredAt time.Time     `json:"stored_at"`
	TTL      time.Duration `json:"ttl"`
}

// expired reports whether the entry has reached its TTL at time now.
// The boundary is inclusive: an entry exactly at TTL age is expired.
func (e Entry) expired(now time.Time) bool {
	return now.Sub(e.StoredAt) >= e.TTL
}

// Backend is the storage capability behind the manager. Get returns
// (entry, false, nil) on absence; storage errors are returned as-is and
// treated as misses by the manager.
type Backend interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, entry Entry) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// ComputeFunc produces the payload for a key on a cache miss.
type ComputeFunc func(ctx context.Context) ([]byte, error)

// Manager coordinates lookups, TTL expiry and recomputation over a
// single backend. Concurrent misses for the same key are coalesced:
// at most one compute runs per key at a time.
type Manager struct {
	backend Backend
	clock   clockwork.Clock
	log     zerolog.Logger
	group   singleflight.Group
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock substitutes the wall clock, used by tests to step time
// instead of sleeping.
func WithClock(clock clockwork.Clock) ManagerOption {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithLogger attaches a logger for hit/miss debug output.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a manager over the given backend.
func NewManager(backend Backend, opts ...ManagerOption) *Manager {
	m := &Manager{
		backend: backend,
		clock:   clockwork.NewRealClock(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetOrCompute returns the live cached payload for key, or runs compute
// and stores its result with the given TTL. A ttl of zero or less
// disables caching entirely: compute runs on every call and nothing is
// stored. Failed computes are never cached, so the next call retries.
func (m *Manager) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc) ([]byte, error) {
	if ttl <= 0 {
		return compute(ctx)
	}

	payload, err, _ := m.group.Do(key, func() (interface{}, error) {
		entry, ok, err := m.backend.Get(ctx, key)
		if err != nil {
			// A broken backend read degrades to a miss; the fetch below
			// still gives the caller a correct answer.
			m.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		} else if ok && !entry.expired(m.clock.Now()) {
			m.log.Debug().Str("key", key).Msg("cache hit")
			return entry.Payload, nil
		}

		m.log.Debug().Str("key", key).Msg("cache miss")
		data, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		fresh := Entry{Payload: data, StoredAt: m.clock.Now(), TTL: ttl}
		if err := m.backend.Put(ctx, key, fresh); err != nil {
			m.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.([]byte), nil
}

// Invalidate drops a single key from the backend.
func (m *Manager) Invalidate(ctx context.Context, key string) error {
	return m.backend.Remove(ctx, key)
}

// Clear removes every entry from the active backend. It does not reach
// into other backends: clearing a memory cache leaves a disk cache
// sharing the same keys untouched.
func (m *Manager) Clear(ctx context.Context) error {
	return m.backend.Clear(ctx)
}
