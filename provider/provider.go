// Package provider defines the byte store the memo layer caches digit sequences in.
//
// Implementations MUST be byte-for-byte transparent: Get returns exactly the []byte
// previously passed to Set for a key (no metadata, no re-encoding, no mutation).
//
// The keyspaces "digits:<ns>:" and "bulk:<ns>:" are owned by memo. Foreign writes
// under those prefixes fail wire validation and are deleted.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
