package kv

import (
	"context"
	"time"
)

// Store is the key-value persistence substrate: opaque byte values under
// string keys. A ttl <= 0 means the value never expires; profile data and
// the recency ledger are stored that way, while catalog snapshots use a
// short TTL.
type Store interface {
	// Get retrieves a value.
	// Returns (value, found, error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL (<= 0 for no expiry).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// GetMultiple retrieves multiple values.
	// Returns a map of found keys to values.
	GetMultiple(ctx context.Context, keys []string) (map[string][]byte, error)

	// SetMultiple stores multiple values with the given TTL.
	SetMultiple(ctx context.Context, items map[string][]byte, ttl time.Duration) error

	// Close closes the underlying connection.
	Close() error
}
