package badger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/db"
	"github.com/kailas-cloud/earlyhelp/internal/logger"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

var errClosed = errors.New("badger: database closed")

// Config holds parameters for an embedded badger store.
type Config struct {
	Path     string
	InMemory bool
	Logger   *zap.Logger
}

// Store implements db.Store on an embedded BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the database at cfg.Path, or an in-memory one.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("path is required")
		}
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = logger.NewBadgerLogger(cfg.Logger)
	opts.Compression = options.None

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, &db.Error{Op: db.OpOpen, Err: err}
	}
	return &Store{db: bdb}, nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, 0o755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// Ping reports an error once the database has been closed.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return &db.Error{Op: db.OpPing, Err: errClosed}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() {
	_ = s.db.Close()
}

// WaitForReady returns once Ping succeeds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, s, timeout)
}

// Get retrieves a value by key. Expired keys are reported as missing.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, db.ErrKeyNotFound
	}
	if err != nil {
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return out, nil
}

// Set stores a value at the given key without expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL stores a value with an expiration. A non-positive ttl never expires.
func (s *Store) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := badger.NewEntry([]byte(key), value)
	if ttl > 0 {
		e = e.WithTTL(ttl)
	}
	if err := s.db.Update(func(txn *badger.Txn) error { return txn.SetEntry(e) }); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// Del removes a key. Deleting a missing key is not an error.
func (s *Store) Del(_ context.Context, key string) error {
	if err := s.db.Update(func(txn *badger.Txn) error { return txn.Delete([]byte(key)) }); err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// Update runs fn inside a read-write transaction and retries on
// badger.ErrConflict, which badger raises when the key was written after the
// transaction read it.
func (s *Store) Update(_ context.Context, key string, ttl time.Duration, fn db.UpdateFunc) error {
	k := []byte(key)
	for range db.MaxUpdateAttempts {
		var fnErr error
		err := s.db.Update(func(txn *badger.Txn) error {
			var (
				cur   []byte
				found bool
			)
			item, err := txn.Get(k)
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
			case err != nil:
				return err
			default:
				found = true
				if cur, err = item.ValueCopy(nil); err != nil {
					return err
				}
			}

			next, err := fn(cur, found)
			if err != nil {
				fnErr = err
				return err
			}
			if next == nil {
				return nil
			}
			e := badger.NewEntry(k, next)
			if ttl > 0 {
				e = e.WithTTL(ttl)
			}
			return txn.SetEntry(e)
		})
		switch {
		case fnErr != nil:
			return fnErr
		case errors.Is(err, badger.ErrConflict):
			continue
		case err != nil:
			return &db.Error{Op: db.OpCAS, Err: err}
		}
		return nil
	}
	return &db.Error{Op: db.OpCAS, Err: db.ErrConflict}
}
