// Package session persists checklist progress and favorites in a KV store.
package session

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"

	"github.com/kailas-cloud/earlyhelp/internal/db"
)

// store is the consumer interface for session blobs (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Update(ctx context.Context, key string, ttl time.Duration, fn db.UpdateFunc) error
}

// digestSize is how many bytes of the BLAKE2b-256 sum end up in a key.
const digestSize = 16

// hashKey returns the hex digest of id so raw session and owner ids never
// appear in the keyspace.
func hashKey(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:digestSize])
}
