package cache

import (
	"context"
	"sync"
	"time"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is an in-process key-value cache with per-entry TTL. Expired
// entries are dropped lazily on read and opportunistically on write.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

var _ interfaces.Cache = &Memory{}

type Option func(*Memory)

// WithClock overrides the time source, used by tests to force expiry
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		m.now = now
	}
}

func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (any, error) {
	m.mu.RLock()
	e, exists := m.entries[key]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if cur, ok := m.entries[key]; ok && m.now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, nil
	}

	return e.value, nil
}

func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, e := range m.entries {
		if m.now().After(e.expiresAt) {
			delete(m.entries, k)
		}
	}

	m.entries[key] = entry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
