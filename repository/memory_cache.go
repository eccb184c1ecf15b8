package repository

import (
	"context"
	"sync"
	"time"
)

// CacheEntry is a cached value and the moment it stops being served.
// A zero ExpiresAt never expires.
type CacheEntry struct {
	Value     string
	ExpiresAt time.Time
}

// MemoryCache is an in-process CacheRepository. Entries expire after ttl
// and expired entries are swept on writes, at most once per ttl.
type MemoryCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	Data      map[string]CacheEntry
}

// NewMemoryCache creates a cache whose entries live for ttl (0 keeps them).
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:  ttl,
		now:  time.Now,
		Data: make(map[string]CacheEntry),
	}
}

func (m *MemoryCache) expired(e CacheEntry, now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.Data[key]
	if !ok || m.expired(entry, m.now()) {
		return "", false
	}
	return entry.Value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.ttl > 0 && now.Sub(m.lastSweep) >= m.ttl {
		m.sweep(now)
	}

	entry := CacheEntry{Value: value}
	if m.ttl > 0 {
		entry.ExpiresAt = now.Add(m.ttl)
	}
	m.Data[key] = entry
	return nil
}

// sweep drops expired entries. The caller holds the write lock.
func (m *MemoryCache) sweep(now time.Time) {
	for key, entry := range m.Data {
		if m.expired(entry, now) {
			delete(m.Data, key)
		}
	}
	m.lastSweep = now
}
