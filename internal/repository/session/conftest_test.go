package session

import (
	"context"
	"errors"
	"time"

	"github.com/kailas-cloud/earlyhelp/internal/db"
)

// memStore is an in-memory store for tests.
type memStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Update(ctx context.Context, key string, ttl time.Duration, fn db.UpdateFunc) error {
	cur, err := m.Get(ctx, key)
	found := err == nil
	if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
		return err
	}
	next, err := fn(cur, found)
	if err != nil || next == nil {
		return err
	}
	return m.SetWithTTL(ctx, key, next, ttl)
}

func (m *memStore) onlyKey() string {
	for k := range m.data {
		return k
	}
	return ""
}
