package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys so that a retried mutation is not applied twice
type IdempotencyStore interface {
	// MarkProcessed records key with a TTL.
	// Returns true if the key was newly recorded, false if it was already present.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if key has already been recorded
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Forget removes key, allowing a failed request to be retried with it
	Forget(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	// TTL is how long a key blocks replays
	TTL time.Duration
	// Enabled determines whether keys are checked at all
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
