package db

import (
	"context"
	"fmt"
	"time"
)

const readinessInterval = 100 * time.Millisecond

// Store is the session storage facade shared by all KV drivers.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	// Update atomically replaces the value at key with the result of fn.
	// Drivers retry fn when another writer got in first.
	Update(ctx context.Context, key string, ttl time.Duration, fn UpdateFunc) error
}

// UpdateFunc derives the next value from the current one; found is false for
// a missing key. A nil result leaves the key untouched. Errors returned by fn
// abort the update and are passed through unwrapped.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// MaxUpdateAttempts bounds how often Update re-runs fn under contention.
const MaxUpdateAttempts = 64

// WaitForReady pings p immediately and then every readinessInterval until it
// answers or timeout expires. The last ping error is attached on timeout.
func WaitForReady(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lastErr := p.Ping(ctx)
	if lastErr == nil {
		return nil
	}

	ticker := time.NewTicker(readinessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("store not ready after %s: %w (last error: %v)", timeout, ctx.Err(), lastErr)
		case <-ticker.C:
			if lastErr = p.Ping(ctx); lastErr == nil {
				return nil
			}
		}
	}
}
