package kv

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Store using sync.Map. Entries without a TTL
// survive until the process exits; expiring entries are swept by a
// background loop that also enforces maxSize (oldest expiry evicted first,
// persistent entries never evicted).
type MemoryStore struct {
	data            sync.Map
	maxSize         int
	cleanupInterval time.Duration
	stopCh          chan struct{}
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(maxSize int, cleanupInterval time.Duration) *MemoryStore {
	m := &MemoryStore{
		maxSize:         maxSize,
		cleanupInterval: cleanupInterval,
		stopCh:          make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, ok := m.data.Load(key)
	if !ok {
		return nil, false, nil
	}
	entry := val.(*memoryEntry)
	if entry.expired(time.Now()) {
		m.data.Delete(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := &memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.data.Store(key, entry)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.data.Delete(key)
	return nil
}

func (m *MemoryStore) GetMultiple(ctx context.Context, keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte)
	now := time.Now()
	for _, key := range keys {
		val, ok := m.data.Load(key)
		if !ok {
			continue
		}
		entry := val.(*memoryEntry)
		if entry.expired(now) {
			m.data.Delete(key)
			continue
		}
		result[key] = entry.value
	}
	return result, nil
}

func (m *MemoryStore) SetMultiple(ctx context.Context, items map[string][]byte, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	for key, value := range items {
		m.data.Store(key, &memoryEntry{value: value, expiresAt: expiresAt})
	}
	return nil
}

func (m *MemoryStore) Close() error {
	close(m.stopCh)
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *MemoryStore) cleanup() {
	now := time.Now()
	var expiring []struct {
		key       string
		expiresAt time.Time
	}
	total := 0

	m.data.Range(func(key, value interface{}) bool {
		k := key.(string)
		entry := value.(*memoryEntry)
		if entry.expired(now) {
			m.data.Delete(k)
			return true
		}
		total++
		if !entry.expiresAt.IsZero() {
			expiring = append(expiring, struct {
				key       string
				expiresAt time.Time
			}{k, entry.expiresAt})
		}
		return true
	})

	// Enforce max size by removing soonest-to-expire entries.
	if total > m.maxSize {
		sort.Slice(expiring, func(i, j int) bool {
			return expiring[i].expiresAt.Before(expiring[j].expiresAt)
		})
		toRemove := total - m.maxSize
		if toRemove > len(expiring) {
			toRemove = len(expiring)
		}
		for i := 0; i < toRemove; i++ {
			m.data.Delete(expiring[i].key)
		}
	}
}
