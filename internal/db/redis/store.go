// Package redis stores checklist sessions and favorites in Redis or Valkey.
package redis

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/earlyhelp/internal/db"
)

var _ db.Store = (*Store)(nil)

const (
	clientName  = "earlyhelp"
	dialTimeout = 5 * time.Second
)

// Config holds connection parameters. Both Redis and Valkey speak RESP3,
// so one config serves either server.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store is a db.Store on top of a rueidis client.
type Store struct {
	client rueidis.Client
}

// NewStore dials the configured addresses. Client-side caching stays off:
// session documents are read-modify-write and must never be served stale.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, errors.New("redis: at least one address is required")
	}
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		ClientName:   clientName,
		Dialer:       net.Dialer{Timeout: dialTimeout},
		DisableCache: true,
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpDial, Err: err}
	}
	return &Store{client: client}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.exec(ctx, db.OpPing, s.client.B().Ping().Build())
}

func (s *Store) Close() { s.client.Close() }

func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, s, timeout)
}

// Get returns db.ErrKeyNotFound for a nil reply, which covers expired keys.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).AsBytes()
	switch {
	case rueidis.IsRedisNil(err):
		return nil, db.ErrKeyNotFound
	case err != nil:
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL writes value with EX seconds; ttl <= 0 stores without expiry.
func (s *Store) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	set := s.client.B().Set().Key(key).Value(rueidis.BinaryString(value))
	if ttl > 0 {
		return s.exec(ctx, db.OpSet, set.Ex(ttl).Build())
	}
	return s.exec(ctx, db.OpSet, set.Build())
}

// Del is idempotent; a missing key is not an error.
func (s *Store) Del(ctx context.Context, key string) error {
	return s.exec(ctx, db.OpDel, s.client.B().Del().Key(key).Build())
}

// casScript writes ARGV[3] only if the key still holds what the caller read:
// ARGV[2] when ARGV[1] is "1", nothing otherwise. ARGV[4] is a PX ttl, 0 for none.
const casScript = `
local cur = redis.call('GET', KEYS[1])
if ARGV[1] == '1' then
  if cur ~= ARGV[2] then return 0 end
elseif cur then
  return 0
end
if tonumber(ARGV[4]) > 0 then
  redis.call('SET', KEYS[1], ARGV[3], 'PX', ARGV[4])
else
  redis.call('SET', KEYS[1], ARGV[3])
end
return 1`

// Update is an optimistic read-modify-write: GET, run fn, then write through
// casScript. A lost race re-reads and re-runs fn.
func (s *Store) Update(ctx context.Context, key string, ttl time.Duration, fn db.UpdateFunc) error {
	for range db.MaxUpdateAttempts {
		cur, err := s.Get(ctx, key)
		found := err == nil
		if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
			return err
		}

		next, err := fn(cur, found)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}

		swapped, err := s.compareAndSet(ctx, key, cur, found, next, ttl)
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
	}
	return &db.Error{Op: db.OpCAS, Err: db.ErrConflict}
}

func (s *Store) compareAndSet(
	ctx context.Context, key string, cur []byte, found bool, next []byte, ttl time.Duration,
) (bool, error) {
	expect := "0"
	if found {
		expect = "1"
	}
	cmd := s.client.B().Eval().Script(casScript).Numkeys(1).Key(key).
		Arg(expect, rueidis.BinaryString(cur), rueidis.BinaryString(next), strconv.FormatInt(ttl.Milliseconds(), 10)).
		Build()
	n, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpCAS, Err: err}
	}
	return n == 1, nil
}

func (s *Store) exec(ctx context.Context, op string, cmd rueidis.Completed) error {
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: op, Err: err}
	}
	return nil
}
